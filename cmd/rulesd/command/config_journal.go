package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-mud-rules/internal/journal"
)

// JournalConfig enables the outcome journal when Directory is set.
type JournalConfig struct {
	Directory string `json:"directory" env:"RULES_JOURNAL_DIR"`
	Prefix    string `json:"prefix" env:"RULES_JOURNAL_PREFIX"`
}

func (c *JournalConfig) validate() error {
	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmt.Errorf("journal prefix %q must not contain path separators", c.Prefix)
	}
	return nil
}

func (c *JournalConfig) enabled() bool {
	return c.Directory != ""
}

func (c *JournalConfig) buildWriter() *journal.Writer {
	var opts []journal.WriterOpt
	if c.Prefix != "" {
		opts = append(opts, journal.WithPrefix(c.Prefix))
	}
	return journal.NewWriter(c.Directory, opts...)
}
