package question

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBank []byte

// ErrMalformedBank is returned when a bank document cannot be decoded into questions.
var ErrMalformedBank = errors.New("malformed question bank")

type bankFile struct {
	Questions []record `yaml:"questions"`
}

// record mirrors Question but keeps the answer optional so a missing value is detectable.
type record struct {
	ID            string     `yaml:"id"`
	Text          string     `yaml:"question"`
	Options       []string   `yaml:"options"`
	CorrectAnswer *int       `yaml:"correctAnswer"`
	Explanation   string     `yaml:"explanation"`
	Category      string     `yaml:"category"`
	Difficulty    Difficulty `yaml:"difficulty"`
}

// Default returns the bank shipped with the binary.
func Default() ([]Question, error) {
	return Parse(defaultBank)
}

// LoadFile reads a YAML bank from disk.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the file bank when path is set, the embedded bank otherwise.
func Load(path string) ([]Question, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML bank document. Field-level problems other than a
// missing or non-numeric answer index are left for ValidateDatabase.
func Parse(data []byte) ([]Question, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc bankFile
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBank, err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for i, r := range doc.Questions {
		if r.CorrectAnswer == nil {
			id := r.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("%w: question %s: %s", ErrMalformedBank, id, msgAnswerNotNumber)
		}
		questions = append(questions, Question{
			ID:            r.ID,
			Text:          r.Text,
			Options:       r.Options,
			CorrectAnswer: *r.CorrectAnswer,
			Explanation:   r.Explanation,
			Category:      r.Category,
			Difficulty:    r.Difficulty,
		})
	}
	return questions, nil
}
