package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/workers/internal/core/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const EmptyWorkersMessage = "Список работников пуст."

// RenderWorkers writes the workers to w in the given format
func RenderWorkers(w io.Writer, format Format, workers []model.Worker) error {
	switch format {
	case FormatTable:
		return renderTable(w, workers)

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(workers); err != nil {
			return errors.WithStack(err)
		}

		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(workers); err != nil {
			return errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

		return nil

	default:
		return errors.Errorf("unknown output format '%s'", format)
	}
}

const (
	indexWidth  = 4
	nameWidth   = 30
	numberWidth = 20
	yearWidth   = 20
)

func renderTable(w io.Writer, workers []model.Worker) error {
	var sb strings.Builder

	if len(workers) == 0 {
		sb.WriteString(EmptyWorkersMessage)
		sb.WriteString("\n")
	} else {
		line := fmt.Sprintf(
			"+-%s-+-%s-+-%s-+-%s-+\n",
			strings.Repeat("-", indexWidth),
			strings.Repeat("-", nameWidth),
			strings.Repeat("-", numberWidth),
			strings.Repeat("-", yearWidth),
		)

		sb.WriteString(line)
		fmt.Fprintf(
			&sb, "| %s | %s | %s | %s |\n",
			center("№", indexWidth),
			center("Имя", nameWidth),
			center("Номер телефона", numberWidth),
			center("Дата рождения", yearWidth),
		)
		sb.WriteString(line)

		for idx, worker := range workers {
			fmt.Fprintf(
				&sb, "| %*d | %-*s | %-*s | %*d |\n",
				indexWidth, idx+1,
				nameWidth, worker.Name,
				numberWidth, worker.Number,
				yearWidth, worker.Year,
			)
			sb.WriteString(line)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// center pads s with spaces on both sides up to width runes,
// the odd space going to the right.
func center(s string, width int) string {
	padding := width - utf8.RuneCountInString(s)
	if padding <= 0 {
		return s
	}

	left := padding / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
}
