package entityplus

// EntityRecord is the authoritative per-entity state owned by the
// registry: its id and its combined membership mask. A record carries no
// component values of its own — those live in the component holders.
type EntityRecord struct {
	id   EntityID
	mask MembershipMask
}

// ID returns the entity identifier this record describes.
func (r EntityRecord) ID() EntityID { return r.id }

// Mask returns the record's current membership mask.
func (r EntityRecord) Mask() MembershipMask { return r.mask }
