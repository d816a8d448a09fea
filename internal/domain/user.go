package domain

// Field limits for users.
const (
	MaxNameLength     = 50
	MaxEmailLength    = 120
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

// User is a registered account. A user owns places and authors reviews;
// both collections are looked up through the stores by user ID.
type User struct {
	Audit
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	// Password holds a plaintext password only between construction (or an
	// update) and hashing. It is never persisted or serialized.
	Password       string `json:"-"`
	HashedPassword string `json:"-"`
	IsAdmin        bool   `json:"is_admin"`
}

// NewUser creates a validated User with a fresh identity.
// The caller is responsible for hashing Password before storage.
func NewUser(firstName, lastName, email, password string, isAdmin bool) (*User, error) {
	u := &User{
		Audit:     newAudit(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		IsAdmin:   isAdmin,
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the user's invariants.
func (u *User) Validate() error {
	if err := firstError(
		u.Audit.validate(),
		requireText("first_name", u.FirstName),
		maxLength("first_name", u.FirstName, MaxNameLength),
		requireText("last_name", u.LastName),
		maxLength("last_name", u.LastName, MaxNameLength),
		requireText("email", u.Email),
		maxLength("email", u.Email, MaxEmailLength),
	); err != nil {
		return err
	}
	if !validEmail(u.Email) {
		return NewValidationError("email", "is not a valid address", nil)
	}
	if u.Password == "" && u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", nil)
	}
	return nil
}

// SetHashedPassword stores the digest and discards the plaintext.
func (u *User) SetHashedPassword(hash string) {
	u.HashedPassword = hash
	u.Password = ""
}

// Update applies the recognized fields of p. Changing email, password or
// is_admin requires actingAsAdmin. Nothing is modified when an error is returned.
func (u *User) Update(p Patch, actingAsAdmin bool) error {
	if !actingAsAdmin {
		if field, changed := u.restrictedChange(p); changed {
			return NewValidationError(field, "can only be changed by an admin", ErrRestrictedField)
		}
	}

	next := *u
	if err := userFields.apply(&next, p); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.touch()
	*u = next
	return nil
}

// restrictedChange returns the first admin-only field that p would change.
func (u *User) restrictedChange(p Patch) (string, bool) {
	if v, ok := p["email"]; ok {
		if s, isString := v.(string); !isString || s != u.Email {
			return "email", true
		}
	}
	if p.Has("password") {
		return "password", true
	}
	if v, ok := p["is_admin"]; ok {
		if b, isBool := v.(bool); !isBool || b != u.IsAdmin {
			return "is_admin", true
		}
	}
	return "", false
}

func validatePassword(password string) error {
	if password == "" {
		return NewValidationError("password", "cannot be empty", nil)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password", "must be at most 72 bytes", nil)
	}
	return nil
}

var userFields = fieldSet[User]{
	"first_name": func(u *User, v any) error {
		s, err := asString("first_name", v)
		u.FirstName = s
		return err
	},
	"last_name": func(u *User, v any) error {
		s, err := asString("last_name", v)
		u.LastName = s
		return err
	},
	"email": func(u *User, v any) error {
		s, err := asString("email", v)
		u.Email = s
		return err
	},
	"password": func(u *User, v any) error {
		s, err := asString("password", v)
		if err != nil {
			return err
		}
		if err := validatePassword(s); err != nil {
			return err
		}
		u.Password = s
		return nil
	},
	"is_admin": func(u *User, v any) error {
		b, err := asBool("is_admin", v)
		u.IsAdmin = b
		return err
	},
}
