package partner

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) ListActive() ([]Partner, error) {
	return s.Repo.ListActive()
}

// Create inserts and re-reads the committed row.
func (s *Service) Create(req *CreatePartnerRequest) (*Partner, error) {
	p := &Partner{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Notes:         req.Notes,
		IsActive:      true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(p.ID)
}

func (s *Service) Update(id uint, req *UpdatePartnerRequest) (*Partner, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ContactPerson != nil {
		p.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// SoftDelete deactivates a partner. Events that reference it by name keep
// working; no referential check is performed.
func (s *Service) SoftDelete(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(id)
}
