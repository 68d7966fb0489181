package slice

import (
	"fmt"
)

func DuplicatedString(s []string) string {
	m := map[string]string{}
	for _, k := range s {
		if _, ok := m[k]; ok {
			return k
		}
		m[k] = k
	}
	return ""
}

func StringNotInSubset(s1, s2 []string) string {
	m := map[string]string{}
	for _, k := range s2 {
		m[k] = k
	}
	for _, k := range s1 {
		if _, ok := m[k]; !ok {
			return k
		}
	}
	return ""
}

func IndicesToValues(vals []string, keys []uint32) []string {
	res := []string{}
	for _, k := range keys {
		res = append(res, vals[k])
	}
	return res
}

// KeyIndices returns the position of each key within columns.
func KeyIndices(columns, keys []string) ([]uint32, error) {
	res := []uint32{}
	for _, k := range keys {
		found := false
		for i, c := range columns {
			if c == k {
				res = append(res, uint32(i))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("column %q not found", k)
		}
	}
	return res, nil
}

func StringSliceEqual(sl1, sl2 []string) bool {
	if len(sl1) != len(sl2) {
		return false
	}
	for i, v := range sl1 {
		if v != sl2[i] {
			return false
		}
	}
	return true
}

func StringSliceContains(sl []string, s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}
