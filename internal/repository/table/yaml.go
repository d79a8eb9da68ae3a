// Package table загружает таблицу расстояний из YAML-файла.
package table

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nyc-safety-calculator/internal/domain"
)

type fileFormat struct {
	Groups []domain.Group `yaml:"groups"`
}

// LoadFile читает таблицу из файла. Пустой путь - встроенная таблица NYC.
func LoadFile(path string) (*domain.DistanceTable, error) {
	if path == "" {
		return domain.NYCTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	return t, nil
}

// Load разбирает YAML и проверяет таблицу
func Load(r io.Reader) (*domain.DistanceTable, error) {
	var ff fileFormat

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if len(ff.Groups) == 0 {
		return nil, fmt.Errorf("table has no groups")
	}

	return domain.NewDistanceTable(ff.Groups)
}
