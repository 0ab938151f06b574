package models

// User is the account aggregate root. Profiles are embedded and persisted
// as part of the user record, never on their own.
type User struct {
	ID            int
	Name          string
	Email         string // login key, unique across users
	Password      string // compared as a plain value
	Admin         bool
	Profiles      []*Profile
	WatchedTitles []string
}

// NewUser creates a regular (non-admin) account. The id is assigned by the
// repository on save.
func NewUser(name, email, password string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

func (u *User) GetID() int { return u.ID }

func (u *User) SetID(id int) { u.ID = id }

// ProfileByID returns the profile with the given id, or nil when the user
// has no such profile.
func (u *User) ProfileByID(id int) *Profile {
	for _, p := range u.Profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NextProfileID computes max(existing profile ids)+1, or 1 when the user
// has no profiles. Ids are unique per user, not globally.
func (u *User) NextProfileID() int {
	next := 1
	for _, p := range u.Profiles {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// AddProfile appends the profile, preserving creation order. A profile id
// already held by this user is a no-op.
func (u *User) AddProfile(p *Profile) {
	if p == nil || u.ProfileByID(p.ID) != nil {
		return
	}
	u.Profiles = append(u.Profiles, p)
}

// RemoveProfile detaches the profile with the given id and reports whether
// anything was removed.
func (u *User) RemoveProfile(id int) bool {
	for i, p := range u.Profiles {
		if p.ID == id {
			u.Profiles = append(u.Profiles[:i], u.Profiles[i+1:]...)
			return true
		}
	}
	return false
}

// AddWatchedTitle records a title played from one of this user's profiles.
func (u *User) AddWatchedTitle(title string) {
	u.WatchedTitles = append(u.WatchedTitles, title)
}

// Profile is a named viewing identity inside a user account. MyList holds
// non-owning references (catalog media ids) in insertion order.
type Profile struct {
	ID      int // unique within the owning user
	Name    string
	OwnerID int
	MyList  []int
}

// NewProfile creates a profile owned by the given user.
func NewProfile(id int, name string, ownerID int) *Profile {
	return &Profile{ID: id, Name: name, OwnerID: ownerID}
}

// InMyList reports whether the media id is already on the list.
func (p *Profile) InMyList(mediaID int) bool {
	for _, id := range p.MyList {
		if id == mediaID {
			return true
		}
	}
	return false
}

// AddToMyList appends the media id. Adding an id already on the list is a
// no-op, so the list behaves as an insertion-ordered set.
func (p *Profile) AddToMyList(mediaID int) {
	if p.InMyList(mediaID) {
		return
	}
	p.MyList = append(p.MyList, mediaID)
}

// RemoveFromMyList drops the media id; removing an absent id is a no-op.
func (p *Profile) RemoveFromMyList(mediaID int) {
	for i, id := range p.MyList {
		if id == mediaID {
			p.MyList = append(p.MyList[:i], p.MyList[i+1:]...)
			return
		}
	}
}
