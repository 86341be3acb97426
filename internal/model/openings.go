package model

// OpeningList holds the windows or doors of a room.
// IDs are handed out by the list, start at 1, and are never reused,
// even after the opening that held them is removed.
type OpeningList struct {
	Items  []Opening `json:"items" toml:"items"`
	NextID int       `json:"next_id" toml:"next_id"`
}

// NewOpeningList creates an empty list whose first ID will be 1.
func NewOpeningList() OpeningList {
	return OpeningList{
		Items:  []Opening{},
		NextID: 1,
	}
}

// Add appends an opening and returns it with its assigned ID.
func (l *OpeningList) Add(widthM, heightM float64) Opening {
	if l.NextID < 1 {
		l.NextID = l.maxID() + 1
	}
	o := Opening{ID: l.NextID, WidthM: widthM, HeightM: heightM}
	l.Items = append(l.Items, o)
	l.NextID++
	return o
}

// Remove deletes the opening with the given ID. Returns true if found and removed.
func (l *OpeningList) Remove(id int) bool {
	for i, o := range l.Items {
		if o.ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Update changes the size of an opening in place; its ID stays the same.
// Returns false if no opening has that ID.
func (l *OpeningList) Update(id int, widthM, heightM float64) bool {
	o := l.Find(id)
	if o == nil {
		return false
	}
	o.WidthM = widthM
	o.HeightM = heightM
	return true
}

// Find returns a pointer to the opening with the given ID, or nil.
func (l *OpeningList) Find(id int) *Opening {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// Len returns the number of openings.
func (l OpeningList) Len() int {
	return len(l.Items)
}

// Snapshot returns a copy of the openings, safe to hand to the calculator
// while the list keeps changing.
func (l OpeningList) Snapshot() []Opening {
	cp := make([]Opening, len(l.Items))
	copy(cp, l.Items)
	return cp
}

// TotalWidth sums the opening widths in m.
func (l OpeningList) TotalWidth() float64 {
	return TotalOpeningWidth(l.Items)
}

// TotalArea sums the opening areas in m².
func (l OpeningList) TotalArea() float64 {
	return TotalOpeningArea(l.Items)
}

// maxID is used to repair lists decoded from files written without next_id.
func (l OpeningList) maxID() int {
	max := 0
	for _, o := range l.Items {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}

// Normalize makes a decoded list usable: non-nil items and a NextID
// greater than every ID in use.
func (l *OpeningList) Normalize() {
	if l.Items == nil {
		l.Items = []Opening{}
	}
	if m := l.maxID(); l.NextID <= m {
		l.NextID = m + 1
	}
	if l.NextID < 1 {
		l.NextID = 1
	}
}
