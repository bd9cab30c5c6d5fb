// File: utils/constants.go
package utils

// BookingLockPrefix is the prefix used for Redis booking tuple lock keys.
const BookingLockPrefix = "booking-lock:"

// SubjectKey is the gin context key holding the authenticated token subject.
const SubjectKey = "subjectID"
