package domain

// QuestionCluster groups near-duplicate customer questions extracted from
// inquiry bodies. Built during one analytics invocation, never persisted.
type QuestionCluster struct {
	// Representative is the member string displayed for the group. It is
	// re-elected once after all members are assigned.
	Representative string `json:"representative"`

	// Members holds every question assigned to the cluster, in assignment
	// order. The representative is included.
	Members []string `json:"members"`

	// Count equals len(Members).
	Count int `json:"count"`
}
