package rbac

import (
	"context"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/availability"
	"crewcycle.io/crewcycle/ent/interview"
)

// Evaluator resolves dynamic resources to the static keys the policy table
// speaks in. Dynamic resources (applications, interviews, availabilities)
// belong to a team or system; the evaluator walks the edge chain and then
// asks the actor's permission set.
type Evaluator struct {
	client *ent.Client
}

// NewEvaluator creates an evaluator over the shared ent client.
func NewEvaluator(client *ent.Client) *Evaluator {
	return &Evaluator{client: client}
}

// CanAccessApplication reports whether the actor may perform the action on the
// application. The owner always reads and updates their own application;
// staff access resolves through the team key.
func (e *Evaluator) CanAccessApplication(ctx context.Context, actor Actor, perms PermissionSet, appID string, action Action) (bool, error) {
	app, err := e.client.Application.Query().
		Where(application.IDEQ(appID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if app.UserID == actor.ID && (action == ActionRead || action == ActionUpdate) {
		return true, nil
	}
	if app.TeamID != "" && perms.Allows(TeamResource(app.TeamID), action) {
		return true, nil
	}
	if app.SystemID != "" && perms.Allows(SystemResource(app.SystemID), action) {
		return true, nil
	}
	return perms.Allows(ResourceAll, action), nil
}

// CanAccessInterview resolves interview → application → team/owner.
func (e *Evaluator) CanAccessInterview(ctx context.Context, actor Actor, perms PermissionSet, interviewID string, action Action) (bool, error) {
	iv, err := e.client.Interview.Query().
		Where(interview.IDEQ(interviewID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if iv.SystemID != "" && perms.Allows(SystemResource(iv.SystemID), action) {
		return true, nil
	}
	if iv.ApplicationID == "" {
		return perms.Allows(ResourceAll, action), nil
	}
	return e.CanAccessApplication(ctx, actor, perms, iv.ApplicationID, action)
}

// CanAccessAvailability resolves availability → owner/system. Owners manage
// their own windows regardless of role.
func (e *Evaluator) CanAccessAvailability(ctx context.Context, actor Actor, perms PermissionSet, availabilityID string, action Action) (bool, error) {
	av, err := e.client.Availability.Query().
		Where(availability.IDEQ(availabilityID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if av.UserID == actor.ID {
		return true, nil
	}
	if av.SystemID != "" && perms.Allows(SystemResource(av.SystemID), action) {
		return true, nil
	}
	return perms.Allows(ResourceAll, action), nil
}

// ActorFromUser builds the evaluator's actor view from a DB user row.
func ActorFromUser(u *ent.User) Actor {
	return Actor{
		ID:       u.ID,
		Role:     Role(u.Role.String()),
		TeamID:   u.TeamID,
		SystemID: u.SystemID,
	}
}
