package admin

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/logger"
)

// TableStat is the row count of one application table.
type TableStat struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// Executor runs raw SQL. Query must run inside a read-only transaction.
type Executor interface {
	Query(ctx context.Context, sql string, maxRows int) (columns []string, rows [][]any, err error)
	Exec(ctx context.Context, sql string) (affected int64, err error)
	Tables(ctx context.Context) ([]string, error)
	TableStats(ctx context.Context) ([]TableStat, error)
}

// Result never carries a Go error: failures are reported in Error.
type Result struct {
	Read     bool     `json:"read"`
	Columns  []string `json:"columns,omitempty"`
	Rows     [][]any  `json:"rows,omitempty"`
	Affected int64    `json:"affected"`
	Message  string   `json:"message,omitempty"`
	Error    string   `json:"error,omitempty"`
	Elapsed  string   `json:"elapsed"`
}

// Console is the administrative query interface.
type Console struct {
	exec    Executor
	maxRows int
	log     *zap.Logger
}

func NewConsole(exec Executor, maxRows int, log *zap.Logger) *Console {
	if maxRows <= 0 {
		maxRows = 1000
	}
	return &Console{exec: exec, maxRows: maxRows, log: logger.OrNop(log)}
}

var (
	readKeywords = []string{"SELECT", "WITH", "SHOW", "EXPLAIN", "VALUES", "TABLE"}

	// a WITH query carrying one of these modifies data
	dataModifying = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|MERGE)\b`)
)

// IsReadQuery reports whether q starts with a read keyword, ignoring
// leading whitespace, comments and opening parentheses. A WITH query that
// contains a data-modifying statement is not a read.
func IsReadQuery(q string) bool {
	q = stripLeading(q)
	word := q
	end := strings.IndexFunc(word, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if end >= 0 {
		word = word[:end]
	}
	word = strings.ToUpper(word)
	if word == "WITH" {
		return !dataModifying.MatchString(q)
	}
	for _, k := range readKeywords {
		if word == k {
			return true
		}
	}
	return false
}

func stripLeading(q string) string {
	for {
		q = strings.TrimLeft(q, " \t\r\n(")
		switch {
		case strings.HasPrefix(q, "--"):
			i := strings.IndexByte(q, '\n')
			if i < 0 {
				return ""
			}
			q = q[i+1:]
		case strings.HasPrefix(q, "/*"):
			i := strings.Index(q, "*/")
			if i < 0 {
				return ""
			}
			q = q[i+2:]
		default:
			return q
		}
	}
}

// Execute runs q on the read path or the mutating path.
func (c *Console) Execute(ctx context.Context, q string) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Error: fmt.Sprintf("внутренняя ошибка: %v", r)}
		}
		res.Elapsed = time.Since(start).Round(time.Microsecond).String()
	}()

	q = strings.TrimSpace(q)
	if q == "" {
		return Result{Error: "пустой запрос"}
	}
	c.log.Info("admin query", zap.String("query", logger.Truncate(q, 200)))

	if IsReadQuery(q) {
		cols, rows, err := c.exec.Query(ctx, q, c.maxRows)
		if err != nil {
			return Result{Read: true, Error: err.Error()}
		}
		res = Result{Read: true, Columns: cols, Rows: rows, Message: fmt.Sprintf("получено строк: %d", len(rows))}
		if len(rows) == c.maxRows {
			res.Message += fmt.Sprintf(" (показаны первые %d)", c.maxRows)
		}
		return res
	}

	n, err := c.exec.Exec(ctx, q)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Affected: n, Message: fmt.Sprintf("затронуто строк: %d", n)}
}

func (c *Console) Tables(ctx context.Context) ([]string, error) {
	return c.exec.Tables(ctx)
}

func (c *Console) TableStats(ctx context.Context) ([]TableStat, error) {
	return c.exec.TableStats(ctx)
}
