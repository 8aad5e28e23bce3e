package content

// Built-in tag lists per content type.
// Text and Creative lists seed the user-editable vocabularies.
var (
	TextTags = []string{
		"Encourage Dreams",
		"Share Insight",
		"Ask Question",
		"Tell Story",
		"Spark Discussion",
		"Share Opinion",
	}

	CreativeTags = []string{
		"Behind the Scenes",
		"Tutorial",
		"Showcase",
		"Inspiration",
		"Process",
		"Before & After",
	}

	RecycledTags = []string{
		"Evergreen",
		"Best Of",
		"Throwback",
		"Updated Classic",
		"Fan Favorite",
	}

	FlexibleTags = []string{
		"Trending Topic",
		"Current Event",
		"Collaboration",
		"Seasonal",
		"Experiment",
	}
)

// TagsForType returns a copy of the built-in tags for a content type.
func TagsForType(t Type) []string {
	var src []string
	switch t {
	case TypeText:
		src = TextTags
	case TypeCreative:
		src = CreativeTags
	case TypeRecycled:
		src = RecycledTags
	case TypeFlexible:
		src = FlexibleTags
	}
	return append([]string{}, src...)
}

// EditableTags returns true if the type's tag vocabulary is user-editable.
func EditableTags(t Type) bool {
	return t == TypeText || t == TypeCreative
}
