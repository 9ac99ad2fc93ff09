package integrity_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKind(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		want  integrity.Kind
	}{
		{"plain", "existence", integrity.Existence},
		{"upper case", "RANGE", integrity.Range},
		{"hyphen", "Non-Nullity", integrity.NonNullity},
		{"spaces", " referential ", integrity.Referential},
		{"observational", "observational", integrity.Observational},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			k, err := integrity.NewKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := integrity.NewKind("fuzzy")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CheckUnknownKindError, gnErr.Code)
	assert.Equal(t, "fuzzy", gnErr.Vars[0])

	_, err = integrity.NewKind("unknown")
	assert.Error(t, err, "unknown is not selectable")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "PASS", integrity.Pass.String())
	assert.Equal(t, "FAIL", integrity.Fail.String())
	assert.Equal(t, "ERROR", integrity.Error.String())
	assert.Equal(t, "UNKNOWN", integrity.Status(42).String())

	res, err := json.Marshal(integrity.Result{
		Name:   "valid_positions",
		Kind:   integrity.Domain,
		Status: integrity.Fail,
	})
	require.NoError(t, err)
	assert.Contains(t, string(res), `"status":"fail"`)
	assert.Contains(t, string(res), `"kind":"domain"`)
	assert.NotContains(t, string(res), "diagnostic")
}

func TestOutcomes(t *testing.T) {
	out := integrity.Passed()
	assert.Equal(t, integrity.Pass, out.Status)
	assert.Empty(t, out.Diagnostic)

	out = integrity.PassedWithNote("%d players never played", 3)
	assert.Equal(t, integrity.Pass, out.Status)
	assert.Equal(t, "3 players never played", out.Note)

	out = integrity.Failed("found %d NULL values", 2)
	assert.Equal(t, integrity.Fail, out.Status)
	assert.Equal(t, "found 2 NULL values", out.Diagnostic)

	orig := errors.New("no such table")
	out = integrity.Errored("query failed: no such table", orig)
	assert.Equal(t, integrity.Error, out.Status)
	assert.ErrorIs(t, out.Err, orig)
}

func TestReport(t *testing.T) {
	chk := integrity.Check{Name: "players_pk_unique", Kind: integrity.Uniqueness}
	rep := integrity.NewReport("run-1", "sqlite:test.db")
	assert.True(t, rep.OK(), "empty report is OK")

	rep.Add(integrity.NewResult(chk, integrity.Passed(), time.Millisecond))
	assert.True(t, rep.OK())

	rep.Add(integrity.NewResult(chk, integrity.Failed("dup"), time.Millisecond))
	rep.Add(integrity.NewResult(
		chk, integrity.Errored("boom", errors.New("boom")), time.Millisecond,
	))
	rep.Finish()

	assert.False(t, rep.OK())
	assert.Equal(t, 3, rep.Total())
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Errored)
	assert.GreaterOrEqual(t, rep.Seconds, 0.0)

	probs := rep.Problems()
	require.Len(t, probs, 2)
	assert.Equal(t, integrity.Fail, probs[0].Status)
	assert.Equal(t, "dup", probs[0].Diagnostic)
	assert.Equal(t, integrity.Error, probs[1].Status)
}

func TestChecksFailedError(t *testing.T) {
	err := integrity.ChecksFailedError(2, 1)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CheckFailedError, gnErr.Code)
	assert.Equal(t, []any{2, 1}, gnErr.Vars)
	assert.Contains(t, gnErr.Err.Error(), "2 failed")
}

func testCatalog() []integrity.Check {
	run := func(context.Context, db.Cursor) integrity.Outcome {
		return integrity.Passed()
	}
	return []integrity.Check{
		{Name: "table_exists[players]", Base: "table_exists",
			Kind: integrity.Existence, Run: run},
		{Name: "table_exists[matches]", Base: "table_exists",
			Kind: integrity.Existence, Run: run},
		{Name: "players_pk_unique", Base: "players_pk_unique",
			Kind: integrity.Uniqueness, Run: run},
		{Name: "valid_positions", Base: "valid_positions",
			Kind: integrity.Domain, Run: run},
		{Name: "players_never_played", Base: "players_never_played",
			Kind: integrity.Observational, Run: run},
	}
}

func names(checks []integrity.Check) []string {
	res := make([]string, len(checks))
	for i, v := range checks {
		res[i] = v.Name
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		msg              string
		only, skip, kind []string
		want             []string
	}{
		{
			msg: "all",
			want: []string{
				"table_exists[players]", "table_exists[matches]",
				"players_pk_unique", "valid_positions", "players_never_played",
			},
		},
		{
			msg:  "only by base name",
			only: []string{"table_exists"},
			want: []string{"table_exists[players]", "table_exists[matches]"},
		},
		{
			msg:  "only by full name keeps catalog order",
			only: []string{"valid_positions", "table_exists[matches]"},
			want: []string{"table_exists[matches]", "valid_positions"},
		},
		{
			msg:  "skip",
			skip: []string{"table_exists", "players_never_played"},
			want: []string{"players_pk_unique", "valid_positions"},
		},
		{
			msg:  "only and skip",
			only: []string{"table_exists"},
			skip: []string{"table_exists[players]"},
			want: []string{"table_exists[matches]"},
		},
		{
			msg:  "kinds",
			kind: []string{"uniqueness", "domain"},
			want: []string{"players_pk_unique", "valid_positions"},
		},
		{
			msg:  "nothing matches the combination",
			only: []string{"valid_positions"},
			kind: []string{"existence"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			res, err := integrity.Select(testCatalog(), tt.only, tt.skip, tt.kind)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, res)
				return
			}
			assert.Equal(t, tt.want, names(res))
		})
	}
}

func TestSelectErrors(t *testing.T) {
	_, err := integrity.Select(testCatalog(), []string{"no_such_check"}, nil, nil)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CheckUnknownNameError, gnErr.Code)
	assert.Equal(t, "no_such_check", gnErr.Vars[0])

	_, err = integrity.Select(testCatalog(), nil, []string{"table_exists[staf]"}, nil)
	require.Error(t, err)

	_, err = integrity.Select(testCatalog(), nil, nil, []string{"bogus"})
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CheckUnknownKindError, gnErr.Code)
}
