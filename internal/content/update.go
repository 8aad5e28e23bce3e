package content

// BlockUpdate is a partial update of a block.
// A nil field is left untouched. ID, Type and CreatedAt cannot be changed.
type BlockUpdate struct {
	Title         *string
	Text          *string
	Tags          *[]string // a non-nil pointer to an empty list clears the tags
	IsPromotional *bool
	IsDone        *bool
	Date          *string
	TimeSlot      *TimeSlot
}

// Empty returns true if the update carries no fields.
func (u BlockUpdate) Empty() bool {
	return u.Title == nil && u.Text == nil && u.Tags == nil && u.IsPromotional == nil &&
		u.IsDone == nil && u.Date == nil && u.TimeSlot == nil
}

// WithTitle sets the title.
func (u BlockUpdate) WithTitle(title string) BlockUpdate {
	u.Title = &title
	return u
}

// WithText sets the draft text.
func (u BlockUpdate) WithText(text string) BlockUpdate {
	u.Text = &text
	return u
}

// WithTags replaces the tag list.
func (u BlockUpdate) WithTags(tags ...string) BlockUpdate {
	list := append([]string{}, tags...)
	u.Tags = &list
	return u
}

// WithPromotional sets the promotional flag.
func (u BlockUpdate) WithPromotional(promo bool) BlockUpdate {
	u.IsPromotional = &promo
	return u
}

// WithDone sets the completion flag.
func (u BlockUpdate) WithDone(done bool) BlockUpdate {
	u.IsDone = &done
	return u
}

// WithDate sets the scheduled date (YYYY-MM-DD).
func (u BlockUpdate) WithDate(date string) BlockUpdate {
	u.Date = &date
	return u
}

// WithTimeSlot sets the scheduled slot.
func (u BlockUpdate) WithTimeSlot(slot TimeSlot) BlockUpdate {
	u.TimeSlot = &slot
	return u
}

// Apply merges the present fields onto b and returns the result.
// Timestamps are left to the caller.
func (u BlockUpdate) Apply(b Block) Block {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Text != nil {
		b.Text = *u.Text
	}
	if u.Tags != nil {
		b.Tags = append([]string{}, (*u.Tags)...)
	}
	if u.IsPromotional != nil {
		b.IsPromotional = *u.IsPromotional
	}
	if u.IsDone != nil {
		b.IsDone = *u.IsDone
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.TimeSlot != nil {
		b.TimeSlot = *u.TimeSlot
	}
	return b
}
