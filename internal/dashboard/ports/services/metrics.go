package services

// Metrics счетчики, которые пишет слой use case.
type Metrics interface {
	ObserveWrite(entity, op string, err error)
	ObserveCache(outcome string)
}
