// Package report renders workout summaries as text lines.
package report

import (
	"bufio"
	"fmt"
	"io"

	"example.com/workouts/internal/domain"
)

const lineFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Render formats a summary as a single line without a trailing newline.
func Render(s domain.Summary) string {
	return fmt.Sprintf(lineFormat, s.TrainingType, s.DurationHours, s.DistanceKm, s.SpeedKmh, s.Calories)
}

// Writer prints rendered summaries one per line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(out)}
}

// Write renders every successful result in order and skips failed ones.
func (w *Writer) Write(results []domain.Result) (int, error) {
	written := 0
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if _, err := fmt.Fprintln(w.w, Render(res.Summary)); err != nil {
			return written, err
		}
		written++
	}
	return written, w.w.Flush()
}
