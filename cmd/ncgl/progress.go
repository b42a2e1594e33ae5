package main

import "log/slog"

// progressLogger logs every n percent of a run.
type progressLogger struct {
	logger *slog.Logger
	every  int
	next   int
}

func newProgressLogger(l *slog.Logger, percent int) *progressLogger {
	return &progressLogger{logger: l, every: percent, next: percent}
}

func (p *progressLogger) OnStep(step, total int, t float64) {
	pct := step * 100 / total
	if pct < p.next {
		return
	}
	p.logger.Info("progress", "step", step, "of", total, "t", t)
	for p.next <= pct {
		p.next += p.every
	}
}
