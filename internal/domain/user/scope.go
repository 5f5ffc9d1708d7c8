package user

// RecordScope restricts record queries to what the actor may see. Nil fields
// impose no restriction.
type RecordScope struct {
	UserID   *string
	FromDate *string
}

// ScopeFor returns the visibility scope for record listings. Employees see
// only their own records within the trailing window starting at fromDate;
// approvers see everything.
func ScopeFor(actor Actor, fromDate string) RecordScope {
	if actor.IsApprover() {
		return RecordScope{}
	}
	uid := actor.UserID
	from := fromDate
	return RecordScope{UserID: &uid, FromDate: &from}
}
