package service

import "time"

// Clock setters for tests that need fixed timestamps
func SetDispatchClock(s *DispatchService, now func() time.Time) { s.now = now }

func SetEntryClock(s *EntryService, now func() time.Time) { s.now = now }

func SetDocumentClock(s *DocumentService, now func() time.Time) { s.now = now }

func SetNumberClock(s *NumberSequenceService, now func() time.Time) { s.now = now }
