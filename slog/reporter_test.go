package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/citelean"
	citeslog "github.com/fwojciec/citelean/slog"
	"github.com/stretchr/testify/assert"
)

func TestReporter_Resolved(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := citeslog.NewReporter(logger)
	r.Resolved("main.tex", "Nat.add_comm", "./Init/Data/Nat.html#Nat.add_comm")

	output := buf.String()
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "file=main.tex")
	assert.Contains(t, output, "key=Nat.add_comm")
	assert.Contains(t, output, "doc_link=./Init/Data/Nat.html#Nat.add_comm")
	assert.Equal(t, 0, r.MissingCount())
}

func TestReporter_Missing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := citeslog.NewReporter(logger)
	r.Missing(citelean.Diagnostic{Path: "ch/intro.tex", Line: 3, Column: 12, Key: "Unknown.Key"})
	r.Missing(citelean.Diagnostic{Path: "ch/intro.tex", Line: 9, Column: 1, Key: "Other"})

	output := buf.String()
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "missing declaration ch/intro.tex:3:12")
	assert.Contains(t, output, "key=Unknown.Key")
	assert.Equal(t, 2, r.MissingCount())
}
