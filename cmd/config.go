package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	ModerationExact      = "exact"
	ModerationDictionary = "dictionary"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL,default=INFO" validate:"required"`
	ModerationMode  string `env:"MODERATION_MODE,default=exact" validate:"oneof=exact dictionary"`
	ForbiddenWords  string `env:"FORBIDDEN_WORDS,default=cat" validate:"required"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*" validate:"required"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES" validate:"omitempty,gt=0"`
	Colours         bool   `env:"COLOURS,default=true"`
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if len(c.Words()) == 0 {
		return fmt.Errorf("FORBIDDEN_WORDS must hold at least one word, got %q", c.ForbiddenWords)
	}
	_, err := c.CharacterRune()
	return err
}

// Words splits FORBIDDEN_WORDS on commas, blanks dropped.
func (c Config) Words() []string {
	words := lo.Map(strings.Split(c.ForbiddenWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Compact(words)
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
