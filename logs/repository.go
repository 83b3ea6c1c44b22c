package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/nelhage/paritytowers/hanoi"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Run is one recorded solve.
type Run struct {
	ID      int       `db:"id"`
	Time    time.Time `db:"time"`
	Disks   int       `db:"disks"`
	Moves   int       `db:"moves"`
	Micros  int64     `db:"micros"`
	Variant string    `db:"variant"`
}

func RunFromResult(r hanoi.Result, at time.Time) *Run {
	return &Run{
		Time:    at.UTC(),
		Disks:   r.Disks,
		Moves:   r.Moves,
		Micros:  r.Elapsed.Microseconds(),
		Variant: r.Variant().String(),
	}
}

func (r *Run) Elapsed() time.Duration {
	return time.Duration(r.Micros) * time.Microsecond
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	_, err = sql.Exec(createRunTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertRun(run *Run) error {
	return r.insertRun(r.insert, run)
}

func (r *Repository) insertRun(stmt *sqlx.NamedStmt, run *Run) error {
	res, err := stmt.Exec(run)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	run.ID = int(id)
	return nil
}

func (r *Repository) InsertRuns(runs []*Run) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, run := range runs {
		if e := r.insertRun(stmt, run); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Runs returns recorded runs, newest first. disks == 0 selects every
// disk count.
func (r *Repository) Runs(disks int) ([]Run, error) {
	var out []Run
	var err error
	if disks == 0 {
		err = r.db.Select(&out, selectRuns)
	} else {
		err = r.db.Select(&out, selectRunsByDisks, disks)
	}
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
