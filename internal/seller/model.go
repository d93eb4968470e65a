package seller

// Seller is a marketplace seller account as stored in the seller table.
// Fields are only reachable through setters so a Seller always satisfies
// the column rules. Build one with New; the zero value holds no email and
// is refused by Insert and Update.
type Seller struct {
	id           *int64
	email        string
	passwordHash string
	passwordSalt string
}

// New builds a Seller, running every setter in order. The first failing
// setter aborts construction; its kind is kept and the original error is
// attached as the cause.
func New(id *int64, email, passwordHash, passwordSalt string) (*Seller, error) {
	s := &Seller{}

	steps := []func() error{
		func() error { return s.SetID(id) },
		func() error { return s.SetEmail(email) },
		func() error { return s.SetPasswordHash(passwordHash) },
		func() error { return s.SetPasswordSalt(passwordSalt) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, wrapError(KindOf(err), "new seller", "", err)
		}
	}

	return s, nil
}

// ID returns the store assigned id and whether it is set.
func (s *Seller) ID() (int64, bool) {
	if s.id == nil {
		return 0, false
	}
	return *s.id, true
}

// Email, PasswordHash and PasswordSalt return the normalized field values.
func (s *Seller) Email() string { return s.email }
func (s *Seller) PasswordHash() string { return s.passwordHash }
func (s *Seller) PasswordSalt() string { return s.passwordSalt }

// initialized reports whether every field went through its setter.
func (s *Seller) initialized() bool {
	return s.email != "" && s.passwordHash != "" && s.passwordSalt != ""
}

// SetID clears the id when given nil.
func (s *Seller) SetID(id *int64) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if id == nil {
		s.id = nil
		return nil
	}
	v := *id
	s.id = &v
	return nil
}

func (s *Seller) SetEmail(email string) error {
	v, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	s.email = v
	return nil
}

func (s *Seller) SetPasswordHash(hash string) error {
	v, err := NormalizePasswordHash(hash)
	if err != nil {
		return err
	}
	s.passwordHash = v
	return nil
}

func (s *Seller) SetPasswordSalt(salt string) error {
	v, err := NormalizePasswordSalt(salt)
	if err != nil {
		return err
	}
	s.passwordSalt = v
	return nil
}
