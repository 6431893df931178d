package harness

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a bar that counts fuzz rounds.
func NewProgress(rounds int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(rounds,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Fuzz runs cfg.Rounds random sequences, round i seeded with cfg.Seed+i,
// and stops at the first failing round.  bar may be nil.
func Fuzz(cfg FuzzConfig, log *logger.L, bar *progressbar.ProgressBar) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, cfg.Rounds)
	for round := 0; round < cfg.Rounds; round++ {
		seed := cfg.Seed + uint64(round)
		ops, err := Generate(seed, cfg.Ops, cfg.KeySpace, cfg.RemoveRatio)
		if err != nil {
			return reports, err
		}

		r := NewRunner(fmt.Sprintf("seed-%d", seed), log)
		report, err := r.Run(ops)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
		if nil != bar {
			_ = bar.Add(1)
		}
	}
	return reports, nil
}
