// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/auditlog"
	"crewcycle.io/crewcycle/ent/availability"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/ent/notification"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/ent/system"
	"crewcycle.io/crewcycle/ent/team"
	"crewcycle.io/crewcycle/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationMixin := schema.Application{}.Mixin()
	applicationMixinFields0 := applicationMixin[0].Fields()
	_ = applicationMixinFields0
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationMixinFields0[0].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationMixinFields0[1].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescUserID is the schema descriptor for user_id field.
	applicationDescUserID := applicationFields[1].Descriptor()
	// application.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	application.UserIDValidator = applicationDescUserID.Validators[0].(func(string) error)
	// applicationDescTeamID is the schema descriptor for team_id field.
	applicationDescTeamID := applicationFields[2].Descriptor()
	// application.TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	application.TeamIDValidator = applicationDescTeamID.Validators[0].(func(string) error)
	// applicationDescCycleID is the schema descriptor for cycle_id field.
	applicationDescCycleID := applicationFields[4].Descriptor()
	// application.CycleIDValidator is a validator for the "cycle_id" field. It is called by the builders before save.
	application.CycleIDValidator = applicationDescCycleID.Validators[0].(func(string) error)
	applicationcycleMixin := schema.ApplicationCycle{}.Mixin()
	applicationcycleMixinFields0 := applicationcycleMixin[0].Fields()
	_ = applicationcycleMixinFields0
	applicationcycleFields := schema.ApplicationCycle{}.Fields()
	_ = applicationcycleFields
	// applicationcycleDescCreatedAt is the schema descriptor for created_at field.
	applicationcycleDescCreatedAt := applicationcycleMixinFields0[0].Descriptor()
	// applicationcycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicationcycle.DefaultCreatedAt = applicationcycleDescCreatedAt.Default.(func() time.Time)
	// applicationcycleDescUpdatedAt is the schema descriptor for updated_at field.
	applicationcycleDescUpdatedAt := applicationcycleMixinFields0[1].Descriptor()
	// applicationcycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicationcycle.DefaultUpdatedAt = applicationcycleDescUpdatedAt.Default.(func() time.Time)
	// applicationcycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicationcycle.UpdateDefaultUpdatedAt = applicationcycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationcycleDescName is the schema descriptor for name field.
	applicationcycleDescName := applicationcycleFields[1].Descriptor()
	// applicationcycle.NameValidator is a validator for the "name" field. It is called by the builders before save.
	applicationcycle.NameValidator = func() func(string) error {
		validators := applicationcycleDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	availabilityMixin := schema.Availability{}.Mixin()
	availabilityMixinFields0 := availabilityMixin[0].Fields()
	_ = availabilityMixinFields0
	availabilityFields := schema.Availability{}.Fields()
	_ = availabilityFields
	// availabilityDescCreatedAt is the schema descriptor for created_at field.
	availabilityDescCreatedAt := availabilityMixinFields0[0].Descriptor()
	// availability.DefaultCreatedAt holds the default value on creation for the created_at field.
	availability.DefaultCreatedAt = availabilityDescCreatedAt.Default.(func() time.Time)
	// availabilityDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityDescUpdatedAt := availabilityMixinFields0[1].Descriptor()
	// availability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availability.DefaultUpdatedAt = availabilityDescUpdatedAt.Default.(func() time.Time)
	// availability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availability.UpdateDefaultUpdatedAt = availabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityDescUserID is the schema descriptor for user_id field.
	availabilityDescUserID := availabilityFields[1].Descriptor()
	// availability.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	availability.UserIDValidator = availabilityDescUserID.Validators[0].(func(string) error)
	// availabilityDescSystemID is the schema descriptor for system_id field.
	availabilityDescSystemID := availabilityFields[2].Descriptor()
	// availability.SystemIDValidator is a validator for the "system_id" field. It is called by the builders before save.
	availability.SystemIDValidator = availabilityDescSystemID.Validators[0].(func(string) error)
	cyclestageMixin := schema.CycleStage{}.Mixin()
	cyclestageMixinFields0 := cyclestageMixin[0].Fields()
	_ = cyclestageMixinFields0
	cyclestageFields := schema.CycleStage{}.Fields()
	_ = cyclestageFields
	// cyclestageDescCreatedAt is the schema descriptor for created_at field.
	cyclestageDescCreatedAt := cyclestageMixinFields0[0].Descriptor()
	// cyclestage.DefaultCreatedAt holds the default value on creation for the created_at field.
	cyclestage.DefaultCreatedAt = cyclestageDescCreatedAt.Default.(func() time.Time)
	// cyclestageDescUpdatedAt is the schema descriptor for updated_at field.
	cyclestageDescUpdatedAt := cyclestageMixinFields0[1].Descriptor()
	// cyclestage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cyclestage.DefaultUpdatedAt = cyclestageDescUpdatedAt.Default.(func() time.Time)
	// cyclestage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cyclestage.UpdateDefaultUpdatedAt = cyclestageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cyclestageDescCycleID is the schema descriptor for cycle_id field.
	cyclestageDescCycleID := cyclestageFields[4].Descriptor()
	// cyclestage.CycleIDValidator is a validator for the "cycle_id" field. It is called by the builders before save.
	cyclestage.CycleIDValidator = cyclestageDescCycleID.Validators[0].(func(string) error)
	interviewMixin := schema.Interview{}.Mixin()
	interviewMixinFields0 := interviewMixin[0].Fields()
	_ = interviewMixinFields0
	interviewFields := schema.Interview{}.Fields()
	_ = interviewFields
	// interviewDescCreatedAt is the schema descriptor for created_at field.
	interviewDescCreatedAt := interviewMixinFields0[0].Descriptor()
	// interview.DefaultCreatedAt holds the default value on creation for the created_at field.
	interview.DefaultCreatedAt = interviewDescCreatedAt.Default.(func() time.Time)
	// interviewDescUpdatedAt is the schema descriptor for updated_at field.
	interviewDescUpdatedAt := interviewMixinFields0[1].Descriptor()
	// interview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interview.DefaultUpdatedAt = interviewDescUpdatedAt.Default.(func() time.Time)
	// interview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interview.UpdateDefaultUpdatedAt = interviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// interviewDescDurationMinutes is the schema descriptor for duration_minutes field.
	interviewDescDurationMinutes := interviewFields[4].Descriptor()
	// interview.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	interview.DefaultDurationMinutes = interviewDescDurationMinutes.Default.(int)
	// interview.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	interview.DurationMinutesValidator = interviewDescDurationMinutes.Validators[0].(func(int) error)
	// interviewDescCreatedByID is the schema descriptor for created_by_id field.
	interviewDescCreatedByID := interviewFields[8].Descriptor()
	// interview.CreatedByIDValidator is a validator for the "created_by_id" field. It is called by the builders before save.
	interview.CreatedByIDValidator = interviewDescCreatedByID.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUserID is the schema descriptor for user_id field.
	notificationDescUserID := notificationFields[1].Descriptor()
	// notification.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notification.UserIDValidator = notificationDescUserID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	systemMixin := schema.System{}.Mixin()
	systemMixinFields0 := systemMixin[0].Fields()
	_ = systemMixinFields0
	systemFields := schema.System{}.Fields()
	_ = systemFields
	// systemDescCreatedAt is the schema descriptor for created_at field.
	systemDescCreatedAt := systemMixinFields0[0].Descriptor()
	// system.DefaultCreatedAt holds the default value on creation for the created_at field.
	system.DefaultCreatedAt = systemDescCreatedAt.Default.(func() time.Time)
	// systemDescUpdatedAt is the schema descriptor for updated_at field.
	systemDescUpdatedAt := systemMixinFields0[1].Descriptor()
	// system.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	system.DefaultUpdatedAt = systemDescUpdatedAt.Default.(func() time.Time)
	// system.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	system.UpdateDefaultUpdatedAt = systemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// systemDescName is the schema descriptor for name field.
	systemDescName := systemFields[1].Descriptor()
	// system.NameValidator is a validator for the "name" field. It is called by the builders before save.
	system.NameValidator = func() func(string) error {
		validators := systemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// systemDescTeamID is the schema descriptor for team_id field.
	systemDescTeamID := systemFields[3].Descriptor()
	// system.TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	system.TeamIDValidator = systemDescTeamID.Validators[0].(func(string) error)
	teamMixin := schema.Team{}.Mixin()
	teamMixinFields0 := teamMixin[0].Fields()
	_ = teamMixinFields0
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamMixinFields0[0].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamMixinFields0[1].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[1].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = func() func(string) error {
		validators := teamDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// teamDescAllowsMultipleSystemInterviews is the schema descriptor for allows_multiple_system_interviews field.
	teamDescAllowsMultipleSystemInterviews := teamFields[3].Descriptor()
	// team.DefaultAllowsMultipleSystemInterviews holds the default value on creation for the allows_multiple_system_interviews field.
	team.DefaultAllowsMultipleSystemInterviews = teamDescAllowsMultipleSystemInterviews.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[8].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
