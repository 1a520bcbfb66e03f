// Package store загружает и сохраняет снимки данных пользователя: активы,
// обязательства, цели, глобальные правила и зарплату.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/portfolio"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"gopkg.in/yaml.v3"
)

// Snapshot - неизменяемый на время расчёта набор данных пользователя
type Snapshot struct {
	Salary      float64             `json:"salary" yaml:"salary"`
	Rules       []models.GlobalRule `json:"rules" yaml:"rules"`
	Assets      []models.Asset      `json:"assets" yaml:"assets"`
	Liabilities []models.Liability  `json:"liabilities" yaml:"liabilities"`
	Goals       []models.Goal       `json:"goals" yaml:"goals"`
}

// Source отдаёт текущий снимок данных
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Rates возвращает системные ставки снимка
func (s *Snapshot) Rates() rules.RateSnapshot {
	return rules.SnapshotOf(s.Rules)
}

// ProjectionInput собирает вход для прогноза; defaultSalary используется,
// если зарплата в снимке не задана.
func (s *Snapshot) ProjectionInput(defaultSalary float64) portfolio.Input {
	salary := s.Salary
	if salary == 0 {
		salary = defaultSalary
	}
	return portfolio.Input{
		Assets:        s.Assets,
		Liabilities:   s.Liabilities,
		Goals:         s.Goals,
		MonthlySalary: salary,
		Rates:         s.Rates(),
	}
}

// YAMLFile - снимок, хранящийся в YAML файле
type YAMLFile struct {
	Path string
}

// Load читает файл; отсутствующий файл даёт пустой снимок с правилами по умолчанию
func (f YAMLFile) Load(_ context.Context) (*Snapshot, error) {
	return LoadYAML(f.Path)
}

// LoadYAML читает снимок из YAML файла
func LoadYAML(path string) (*Snapshot, error) {
	snap := &Snapshot{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, snap); err != nil {
			return nil, fmt.Errorf("parse snapshot: %w", err)
		}
	}

	// правила по умолчанию получает только новый профиль; сохранённый пустой
	// список (rules: []) остаётся пустым
	if snap.Rules == nil {
		snap.Rules = rules.DefaultRules()
	}
	return snap, nil
}

// SaveYAML записывает снимок в YAML файл
func SaveYAML(path string, snap *Snapshot) error {
	out := *snap
	if out.Rules == nil {
		out.Rules = []models.GlobalRule{}
	}
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Saver сохраняет снимок целиком
type Saver interface {
	Save(ctx context.Context, snap *Snapshot) error
}

// Backend - хранилище, поддерживающее чтение и запись
type Backend interface {
	Source
	Saver
}

// Save записывает снимок в файл
func (f YAMLFile) Save(_ context.Context, snap *Snapshot) error {
	return SaveYAML(f.Path, snap)
}
