package ml

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/patrikeh/go-deep/training"
)

// epsilon keeps the ratios defined when a denominator is zero.
const epsilon = 1e-10

type ConfusionMatrix struct {
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
}

type Metrics struct {
	ConfusionMatrix
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
	ErrorRate float64 `json:"error_rate"`
}

func Evaluate(examples training.Examples, weights Weights) Metrics {
	var matrix ConfusionMatrix
	for _, example := range examples {
		predicted := Predict(example.Input, weights)
		actual := int(example.Response[0])

		switch {
		case actual == 1 && predicted == 1:
			matrix.TruePositives++
		case actual == 1:
			matrix.FalseNegatives++
		case predicted == 1:
			matrix.FalsePositives++
		default:
			matrix.TrueNegatives++
		}
	}

	return matrix.Metrics()
}

func (that ConfusionMatrix) Total() int {
	return that.TruePositives + that.TrueNegatives + that.FalsePositives + that.FalseNegatives
}

func (that ConfusionMatrix) Metrics() Metrics {
	tp := float64(that.TruePositives)
	precision := tp / (tp + float64(that.FalsePositives) + epsilon)
	recall := tp / (tp + float64(that.FalseNegatives) + epsilon)

	var errorRate float64
	if total := that.Total(); total > 0 {
		errorRate = float64(that.FalsePositives+that.FalseNegatives) / float64(total)
	}

	return Metrics{
		ConfusionMatrix: that,
		Precision:       precision,
		Recall:          recall,
		F1Score:         2 * precision * recall / (precision + recall + epsilon),
		ErrorRate:       errorRate,
	}
}

// WriteMetricsCSV writes the Metric,Value table.
func WriteMetricsCSV(w io.Writer, metrics Metrics) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"True Positive", strconv.Itoa(metrics.TruePositives)},
		{"True Negative", strconv.Itoa(metrics.TrueNegatives)},
		{"False Positive", strconv.Itoa(metrics.FalsePositives)},
		{"False Negative", strconv.Itoa(metrics.FalseNegatives)},
		{"Precision", formatMetric(metrics.Precision)},
		{"Recall", formatMetric(metrics.Recall)},
		{"F1-Score", formatMetric(metrics.F1Score)},
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}

func SaveMetrics(path string, metrics Metrics) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}

	if err = WriteMetricsCSV(file, metrics); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close metrics file: %w", err)
	}

	return nil
}

func formatMetric(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
