package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrPoolEmpty is returned when a roadmap has no questions to serve.
// Callers surface this as a "quiz not available" state, not a retry.
var ErrPoolEmpty = errors.New("question pool is empty")

// ErrPoolNotFound is returned when no pool file exists for a roadmap.
var ErrPoolNotFound = errors.New("question pool not found")

// Pool is a validated set of questions for one roadmap.
type Pool struct {
	Roadmap   string     `json:"roadmap"`
	Settings  *Settings  `json:"settings,omitempty"`
	Questions []Question `json:"questions"`
}

var (
	compileOnce  sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
	schemaSource = "schema://question-pool.json"
)

func compiledPoolSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(PoolSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pool schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse pool schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaSource, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaSource)
	})
	return compiled, compileErr
}

// ParsePool validates raw pool JSON against PoolSchema and decodes it.
// Entries without an id are assigned one so answer records can always
// reference their question.
func ParsePool(raw []byte) (*Pool, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid pool JSON: %w", err)
	}

	schema, err := compiledPoolSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pool schema validation: %w", err)
	}

	var pool Pool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}
	for i := range pool.Questions {
		if pool.Questions[i].ID == "" {
			pool.Questions[i].ID = uuid.NewString()
		}
	}
	return &pool, nil
}

// LoadPool reads and validates the pool file for a roadmap from dir.
func LoadPool(dir, roadmap string) (*Pool, error) {
	path := filepath.Join(dir, roadmap+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPoolNotFound, roadmap)
		}
		return nil, fmt.Errorf("read pool %s: %w", path, err)
	}
	pool, err := ParsePool(raw)
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", roadmap, err)
	}
	return pool, nil
}

// EffectiveSettings returns the pool's settings with defaults applied.
func (p *Pool) EffectiveSettings() Settings {
	s := DefaultSettings
	if p.Settings != nil {
		if p.Settings.TimeLimitMinutes > 0 {
			s.TimeLimitMinutes = p.Settings.TimeLimitMinutes
		}
		if p.Settings.PassingScore > 0 {
			s.PassingScore = p.Settings.PassingScore
		}
		if p.Settings.QuestionCount > 0 {
			s.QuestionCount = p.Settings.QuestionCount
		}
	}
	return s
}

// Draw selects up to n distinct questions at random. Returns
// ErrPoolEmpty when the pool has no questions at all.
func (p *Pool) Draw(rng *rand.Rand, n int) ([]Question, error) {
	if len(p.Questions) == 0 {
		return nil, ErrPoolEmpty
	}
	if n > len(p.Questions) {
		n = len(p.Questions)
	}
	perm := rng.Perm(len(p.Questions))
	out := make([]Question, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, p.Questions[idx])
	}
	return out, nil
}
