package rooms

// Static enumeration lookups for view and bed-type ids. Unknown ids are
// echoed back as their own label so the mock never rejects client-side
// enum additions.

var viewLabels = map[string]string{
	"RV_001": "Pool View",
	"RV_002": "City View",
	"RV_003": "Garden View",
	"RV_004": "Street View",
}

var bedTypeLabels = map[string]string{
	"BT_001": "King",
	"BT_002": "Queen",
	"BT_003": "Double",
}

// ViewLabel resolves a view id to its display label.
func ViewLabel(id string) string {
	if label, ok := viewLabels[id]; ok {
		return label
	}
	return id
}

// BedTypeLabel resolves a bed-type id to its display label.
func BedTypeLabel(id string) string {
	if label, ok := bedTypeLabels[id]; ok {
		return label
	}
	return id
}
