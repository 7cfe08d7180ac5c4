package ports

// Metrics receives the store level measurements of the services
type Metrics interface {
	// RecordMutation counts a create, update or delete by outcome
	RecordMutation(store, operation string, err error)

	// RecordNotModified counts a conditional read answered without a body
	RecordNotModified(resource string)

	// SetEntityCount publishes the number of live entities of a store
	SetEntityCount(store string, count int)
}
