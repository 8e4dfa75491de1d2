package bitmapstore

import (
	"time"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
)

// jobRow mirrors the rebac_bitmap_job table (spec §4.5's recompute
// queue), one row per pending/processing/completed/failed/parked job.
type jobRow struct {
	ID           string
	Tenant       string
	SubjectType  string
	SubjectID    string
	Permission   string
	ResourceType string
	Status       string
	Priority     int
	Attempts     int
	CreatedAt    time.Time
	NotBefore    time.Time
}

func (r jobRow) toJob() bitmap.Job {
	return bitmap.Job{
		ID:           r.ID,
		Tenant:       r.Tenant,
		Subject:      tuple.Ref{Type: r.SubjectType, ID: r.SubjectID},
		Permission:   r.Permission,
		ResourceType: r.ResourceType,
		Status:       bitmap.JobStatus(r.Status),
		Priority:     r.Priority,
		Attempts:     r.Attempts,
		CreatedAt:    r.CreatedAt,
		NotBefore:    r.NotBefore,
	}
}
