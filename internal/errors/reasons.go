package errors

import "errors"

// Reason identifies why a user intent was rejected
type Reason string

// Rejection reasons
const (
	ReasonPoolExhausted           Reason = "POOL_EXHAUSTED"
	ReasonSkillPointsExhausted    Reason = "SKILL_POINTS_EXHAUSTED"
	ReasonSkillPointsUnderflow    Reason = "SKILL_POINTS_UNDERFLOW"
	ReasonClassRequirementsNotMet Reason = "CLASS_REQUIREMENTS_NOT_MET"
	ReasonPersistenceFailure      Reason = "PERSISTENCE_FAILURE"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// PoolExhausted rejects an attribute increment once the pool is spent
func PoolExhausted(pool int) *Error {
	return Newf(CodeResourceExhausted,
		"Total attribute points cannot exceed %d. Decrease one attribute before increasing another.", pool).
		WithReason(ReasonPoolExhausted)
}

// SkillPointsExhausted rejects a skill increment with no budget left
func SkillPointsExhausted() *Error {
	return New(CodeResourceExhausted, "No skill points remaining.").
		WithReason(ReasonSkillPointsExhausted)
}

// SkillPointsUnderflow rejects a skill decrement on a skill with no points
func SkillPointsUnderflow() *Error {
	return New(CodeFailedPrecondition, "Skill points cannot be negative.").
		WithReason(ReasonSkillPointsUnderflow)
}

// ClassRequirementsNotMet rejects a class selection the character does not qualify for
func ClassRequirementsNotMet(className string) *Error {
	return Newf(CodeFailedPrecondition, "Requirements for %s are not met.", className).
		WithReason(ReasonClassRequirementsNotMet)
}

// PersistenceFailure reports a failed roster save
func PersistenceFailure(cause error) *Error {
	return &Error{
		Code:    CodeUnavailable,
		Reason:  ReasonPersistenceFailure,
		Message: "Failed to save characters.",
		Cause:   cause,
	}
}

// GetReason extracts the rejection reason from an error
func GetReason(err error) Reason {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason
	}
	return ""
}

// HasReason checks if an error carries the given rejection reason
func HasReason(err error, reason Reason) bool {
	return err != nil && GetReason(err) == reason
}

// IsRejection reports whether err is a rejected user intent to be shown as a notification
func IsRejection(err error) bool {
	switch GetReason(err) {
	case ReasonPoolExhausted,
		ReasonSkillPointsExhausted,
		ReasonSkillPointsUnderflow,
		ReasonClassRequirementsNotMet,
		ReasonPersistenceFailure:
		return true
	default:
		return false
	}
}
