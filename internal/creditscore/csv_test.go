package creditscore_test

import (
	"creditscore/internal/creditscore"
	"creditscore/pkg/serrors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_scores.csv")
	body := "address,score,label\n0xabc,720,Excellent\n0xdef,610\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	table, err := creditscore.LoadCSV(path)
	require.NoError(t, err)

	want := &creditscore.CSVTable{
		Header: []string{"address", "score", "label"},
		Rows: []map[string]*string{
			{"address": ptr("0xabc"), "score": ptr("720"), "label": ptr("Excellent")},
			{"address": ptr("0xdef"), "score": ptr("610"), "label": nil},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("LoadCSV() mismatch (-want +got):\n%s", diff)
	}
}

func ptr(s string) *string { return &s }

func TestLoadCSV_NotFound(t *testing.T) {
	_, err := creditscore.LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "CSV file not found", serrors.MessageOf(err))
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := creditscore.ReadCSV(strings.NewReader("address,score\n\"0xabc,720\n"))
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, "Error reading CSV file", serrors.MessageOf(err))
}

func TestReadCSV_Empty(t *testing.T) {
	table, err := creditscore.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, table.Header)
	require.Empty(t, table.Rows)
}
