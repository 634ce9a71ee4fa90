package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExecutor struct {
	queried, executed string
	err               error
	rows              [][]any
}

func (s *stubExecutor) Query(_ context.Context, q string, maxRows int) ([]string, [][]any, error) {
	s.queried = q
	if s.err != nil {
		return nil, nil, s.err
	}
	return []string{"id", "email"}, s.rows[:min(len(s.rows), maxRows)], nil
}

func (s *stubExecutor) Exec(_ context.Context, q string) (int64, error) {
	s.executed = q
	if s.err != nil {
		return 0, s.err
	}
	return 3, nil
}

func (s *stubExecutor) Tables(context.Context) ([]string, error) { return []string{"users"}, nil }

func (s *stubExecutor) TableStats(context.Context) ([]TableStat, error) {
	return []TableStat{{Table: "users", Rows: 2}}, nil
}

func TestIsReadQuery(t *testing.T) {
	for q, want := range map[string]bool{
		"SELECT 1":                             true,
		"  select * from users":                true,
		"WITH x AS (SELECT 1) SELECT * FROM x": true,
		"(SELECT 1) UNION (SELECT 2)":          true,
		"-- comment\nSELECT 1":                 true,
		"/* c */ explain select 1":             true,
		"UPDATE users SET is_active = false":   false,
		"DELETE FROM favorites":                false,
		"selector":                             false,
		"":                                     false,
	} {
		assert.Equal(t, want, IsReadQuery(q), q)
	}
}

func TestDataModifyingWithIsNotRead(t *testing.T) {
	for q, want := range map[string]bool{
		"WITH d AS (DELETE FROM favorites RETURNING *) SELECT count(*) FROM d": false,
		"with u as (update users set is_active = false returning id) table u":  false,
		"WITH n AS (INSERT INTO favorites DEFAULT VALUES) SELECT 1":            false,
		"WITH updated_at AS (SELECT now()) SELECT * FROM updated_at":           true,
	} {
		assert.Equal(t, want, IsReadQuery(q), q)
	}

	ex := &stubExecutor{}
	res := NewConsole(ex, 0, nil).Execute(context.Background(), "WITH d AS (DELETE FROM favorites RETURNING *) SELECT 1")
	assert.False(t, res.Read)
	assert.Empty(t, ex.queried)
	assert.NotEmpty(t, ex.executed)
}

func TestExecuteReadPath(t *testing.T) {
	ex := &stubExecutor{rows: [][]any{{1, "a@b.c"}, {2, "d@e.f"}}}
	c := NewConsole(ex, 1, nil)

	res := c.Execute(context.Background(), "SELECT id, email FROM users")

	assert.True(t, res.Read)
	assert.Equal(t, []string{"id", "email"}, res.Columns)
	assert.Len(t, res.Rows, 1)
	assert.Contains(t, res.Message, "показаны первые 1")
	assert.Empty(t, ex.executed)
	assert.Empty(t, res.Error)
}

func TestExecuteMutatingPath(t *testing.T) {
	ex := &stubExecutor{}
	res := NewConsole(ex, 0, nil).Execute(context.Background(), "DELETE FROM favorites")

	assert.False(t, res.Read)
	assert.Equal(t, int64(3), res.Affected)
	assert.Equal(t, "DELETE FROM favorites", ex.executed)
	assert.Empty(t, ex.queried)
}

func TestExecuteReportsErrorsAsMessages(t *testing.T) {
	ex := &stubExecutor{err: errors.New(`relation "nope" does not exist`)}
	c := NewConsole(ex, 0, nil)

	assert.Equal(t, `relation "nope" does not exist`, c.Execute(context.Background(), "SELECT * FROM nope").Error)
	assert.Equal(t, `relation "nope" does not exist`, c.Execute(context.Background(), "DROP TABLE nope").Error)
	assert.Equal(t, "пустой запрос", c.Execute(context.Background(), "   ").Error)
}
