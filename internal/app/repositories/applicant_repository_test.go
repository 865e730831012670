package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lvogel/admithub/internal/app/models"
)

// execRecorder captures the statement handed to Exec and answers with a
// canned command tag.
type execRecorder struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
}

func (r *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql = sql
	r.args = args
	return r.tag, nil
}

func (r *execRecorder) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (r *execRecorder) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestUpdateReviewStatusGuardsCurrentStage(t *testing.T) {
	repo := NewApplicantRepository(nil)
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 1")}
	id := uuid.New()

	moved, err := repo.UpdateReviewStatus(context.Background(), rec, id, models.StatusDocuments, models.StatusCourseAnalysis)
	if err != nil {
		t.Fatalf("UpdateReviewStatus returned error: %v", err)
	}
	if !moved {
		t.Error("moved = false, want true for a matched row")
	}

	if !strings.Contains(rec.sql, "review_status = $3") {
		t.Errorf("update statement is not guarded by the current stage:\n%s", rec.sql)
	}
	if len(rec.args) != 3 {
		t.Fatalf("got %d args, want 3", len(rec.args))
	}
	if rec.args[0] != models.StatusCourseAnalysis || rec.args[1] != id || rec.args[2] != models.StatusDocuments {
		t.Errorf("args = %v, want [course_analysis, %s, documents]", rec.args, id)
	}
}

// A stage that changed between the caller's read and the write must leave
// the stored status alone. A committed rejection in particular stays final
// even when a document review completes at the same time.
func TestUpdateReviewStatusConcurrentChangeIsNoop(t *testing.T) {
	repo := NewApplicantRepository(nil)
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 0")}

	moved, err := repo.UpdateReviewStatus(context.Background(), rec, uuid.New(), models.StatusDocuments, models.StatusCourseAnalysis)
	if err != nil {
		t.Fatalf("UpdateReviewStatus returned error: %v", err)
	}
	if moved {
		t.Error("moved = true, want false when no row matches the expected stage")
	}
}
