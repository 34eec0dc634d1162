package location

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) ListActive() ([]Location, error) {
	return s.Repo.ListActive()
}

func (s *Service) Create(req *CreateLocationRequest) (*Location, error) {
	l := &Location{
		Name:     req.Name,
		Address:  req.Address,
		Region:   req.Region,
		Capacity: req.Capacity,
		Notes:    req.Notes,
		IsActive: true,
	}
	if err := s.Repo.Create(l); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(l.ID)
}

func (s *Service) Update(id uint, req *UpdateLocationRequest) (*Location, error) {
	l, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.Region != nil {
		l.Region = *req.Region
	}
	if req.Capacity != nil {
		l.Capacity = *req.Capacity
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(l); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

func (s *Service) SoftDelete(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(id)
}
