// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/conf"
	confhelpers "github.com/wrgl/csvt/pkg/conf/helpers"
	"github.com/wrgl/csvt/pkg/testutils"
)

func TestOpenGlobalConfig(t *testing.T) {
	for _, b := range []bool{true, false} {
		cleanup := confhelpers.MockGlobalConf(t, b)
		defer cleanup()

		s := conf.NewStore("", conf.GlobalSource, "")
		c1, err := s.Open()
		require.NoError(t, err)
		c1.Delimiter = ";"
		c1.Gen = &conf.Gen{Rows: 50}
		require.NoError(t, s.Save(c1))

		c2, err := s.Open()
		require.NoError(t, err)
		assert.Equal(t, c1, c2)
	}
}

func TestOpenLocalConfig(t *testing.T) {
	dir, err := testutils.TempDir("", "test_csvt_config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s := conf.NewStore(dir, conf.LocalSource, "")
	c1, err := s.Open()
	require.NoError(t, err)
	c1.Quote = "'"
	require.NoError(t, s.Save(c1))

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestOpenFileConfig(t *testing.T) {
	f, err := testutils.TempFile("", "test_csvt_config*.yaml")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	defer os.Remove(f.Name())

	s := conf.NewStore("", conf.FileSource, f.Name())
	c1 := &conf.Config{Delimiter: "\t", Preview: &conf.Preview{Rows: 20}}
	require.NoError(t, s.Save(c1))

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestAggregateConfig(t *testing.T) {
	cleanup := confhelpers.MockGlobalConf(t, true)
	defer cleanup()
	dir, err := testutils.TempDir("", "test_csvt_config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	yes := true
	no := false

	// write global config
	s := conf.NewStore(dir, conf.GlobalSource, "")
	c, err := s.Open()
	require.NoError(t, err)
	c.Delimiter = ";"
	c.NoProgress = &yes
	c.Gen = &conf.Gen{Rows: 100}
	require.NoError(t, s.Save(c))

	// write local config
	s = conf.NewStore(dir, conf.LocalSource, "")
	c, err = s.Open()
	require.NoError(t, err)
	c.Quote = "'"
	c.NoProgress = &no
	require.NoError(t, s.Save(c))

	// local overrides global field by field
	s = conf.NewStore(dir, conf.AggregateSource, "")
	c, err = s.Open()
	require.NoError(t, err)
	assert.Equal(t, &conf.Config{
		Delimiter:  ";",
		Quote:      "'",
		NoProgress: &no,
		Gen:        &conf.Gen{Rows: 100},
	}, c)
	assert.Error(t, s.Save(c))
}

func TestConfigRunes(t *testing.T) {
	c := &conf.Config{}
	assert.Equal(t, rune(0), c.DelimiterRune())
	assert.Equal(t, rune(0), c.QuoteRune())
	c.Delimiter = "★"
	c.Quote = "'"
	assert.Equal(t, '★', c.DelimiterRune())
	assert.Equal(t, '\'', c.QuoteRune())
}
