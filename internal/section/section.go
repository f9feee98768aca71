// Package section tracks which named page region is currently in view.
package section

// ID names one of the page's anchor regions.
type ID string

const (
	Home     ID = "home"
	About    ID = "about"
	Skills   ID = "skills"
	Projects ID = "projects"
	Contact  ID = "contact"
)

// Order is the document order of the page regions.
var Order = []ID{Home, About, Skills, Projects, Contact}

// Default is active before any scroll position has been seen.
const Default = Home

// Valid reports whether id is one of the page regions.
func Valid(id ID) bool {
	for _, o := range Order {
		if o == id {
			return true
		}
	}
	return false
}

// Region is a named anchor and its offset from the document top, in pixels.
type Region struct {
	ID  ID      `json:"id"`
	Top float64 `json:"top"`
}

// ScrollState is the viewport position reported by the client.
type ScrollState struct {
	ScrollY        float64 `json:"scrollY" form:"scrollY"`
	ViewportHeight float64 `json:"viewportHeight" form:"viewportHeight"`
}

// Threshold is the document offset of the viewport's vertical midpoint.
func (s ScrollState) Threshold() float64 {
	return s.ScrollY + s.ViewportHeight/2
}

// RegionsFromOffsets lays out the measured offsets in document order.
// Regions with no measured offset are left out and can never become active;
// ids outside Order are ignored.
func RegionsFromOffsets(offsets map[ID]float64) []Region {
	regions := make([]Region, 0, len(Order))
	for _, id := range Order {
		top, ok := offsets[id]
		if !ok {
			continue
		}
		regions = append(regions, Region{ID: id, Top: top})
	}
	return regions
}

// Active returns the last region, in the given order, whose top is at or above
// the viewport midpoint. ok is false when no region qualifies.
func Active(state ScrollState, regions []Region) (id ID, ok bool) {
	threshold := state.Threshold()
	for _, r := range regions {
		if r.Top <= threshold {
			id, ok = r.ID, true
		}
	}
	return id, ok
}
