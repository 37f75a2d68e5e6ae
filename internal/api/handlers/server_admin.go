package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/internal/jobs"
	"crewcycle.io/crewcycle/internal/rbac"
)

// TriggerSweep handles POST /admin/sweep. Admin only. Runs the cycle sweep
// immediately instead of waiting for the daily job, then enqueues decision
// notices for any transitioned cycle.
func (s *Server) TriggerSweep(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionAny) {
		forbidden(c)
		return
	}

	res, err := s.sweeper.Run(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	if s.riverClient != nil && len(res.TransitionedCycleIDs) > 0 {
		s.enqueueDecisionNotices(c.Request.Context(), res.TransitionedCycleIDs)
	}

	c.JSON(http.StatusOK, gin.H{
		"cycles_checked": res.CyclesChecked,
		"transitions":    res.Transitions,
		"failures":       res.Failures,
	})
}

// enqueueDecisionNotices hands the per-cycle notice inserts to the general
// pool so the response does not wait on them. Without a pool it falls back to
// inline inserts.
func (s *Server) enqueueDecisionNotices(ctx context.Context, cycleIDs []string) {
	insert := func(ctx context.Context) {
		for _, cycleID := range cycleIDs {
			_, _ = s.riverClient.Insert(ctx, jobs.DecisionNoticeArgs{CycleID: cycleID}, nil)
		}
	}
	if s.pools == nil || s.pools.SubmitDetached("general", insert) != nil {
		insert(ctx)
	}
}
