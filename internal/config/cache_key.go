package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminSessionKey returns the cache key for an admin's login session.
func (r *CacheKeyStruct) AdminSessionKey(adminID int) string {
	return fmt.Sprintf("login:admin:%d", adminID)
}

// WizardSessionKey returns the cache key for a student's survey session.
func (r *CacheKeyStruct) WizardSessionKey(token string) string {
	return fmt.Sprintf("wizard:%s:session", token)
}

// ConfirmationQueueKey is the Redis list drained by the confirmation
// email worker.
func (r *CacheKeyStruct) ConfirmationQueueKey() string {
	return "confirmation_email_queue"
}

// SubmissionMonitorChannel is the Redis PubSub channel carrying
// newly-submitted evaluation events for the admin live monitor.
func (r *CacheKeyStruct) SubmissionMonitorChannel() string {
	return "evaluaciones:monitor"
}

var CacheKey = NewCacheKeyStruct()
