// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

type Source int

const (
	UnspecifiedSource Source = iota
	// FileSource reads and writes an explicitly given file.
	FileSource
	// LocalSource reads and writes .csvt.yaml in the working directory.
	LocalSource
	// GlobalSource reads and writes the per-user config file.
	GlobalSource
	// AggregateSource reads global config overridden by local config.
	// It cannot save.
	AggregateSource
)

type Store struct {
	workDir string
	source  Source
	fp      string
}

func NewStore(workDir string, source Source, fp string) *Store {
	if fp != "" {
		source = FileSource
	}
	return &Store{
		workDir: workDir,
		source:  source,
		fp:      fp,
	}
}

func (s *Store) readConfig(fp string) (*Config, error) {
	c := &Config{}
	f, err := os.Open(fp)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return nil, fmt.Errorf("error reading config at %q: %v", fp, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return c, nil
}

func (s *Store) path() (string, error) {
	switch s.source {
	case GlobalSource:
		return globalConfigPath()
	case LocalSource:
		return localPath(s.workDir), nil
	case FileSource:
		return s.fp, nil
	default:
		return "", fmt.Errorf("unrecognized source: %v", s.source)
	}
}

func (s *Store) Open() (*Config, error) {
	if s.source == AggregateSource {
		return s.aggregateConfig()
	}
	fp, err := s.path()
	if err != nil {
		return nil, err
	}
	return s.readConfig(fp)
}

func (s *Store) Save(c *Config) error {
	if s.source == AggregateSource {
		return fmt.Errorf("attempt to save aggregated config")
	}
	fp, err := s.path()
	if err != nil {
		return err
	}
	if fp == "" {
		return fmt.Errorf("empty config path")
	}
	err = os.MkdirAll(filepath.Dir(fp), 0755)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(fp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	_, err = f.Write(b)
	return err
}

type ptrTransformer struct {
}

func (t *ptrTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() == reflect.Ptr && typ.Elem().Kind() != reflect.Struct {
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

func (s *Store) aggregateConfig() (*Config, error) {
	localConfig, err := s.readConfig(localPath(s.workDir))
	if err != nil {
		return nil, err
	}
	fp, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	globalConfig, err := s.readConfig(fp)
	if err != nil {
		return nil, err
	}
	err = mergo.Merge(globalConfig, localConfig, mergo.WithOverride, mergo.WithTransformers(&ptrTransformer{}))
	if err != nil {
		return nil, err
	}
	return globalConfig, nil
}
