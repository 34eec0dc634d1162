package manager

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) ListActive() ([]EventManager, error) {
	return s.Repo.ListActive()
}

func (s *Service) Create(req *CreateManagerRequest) (*EventManager, error) {
	m := &EventManager{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Department: req.Department,
		IsActive:   true,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(m.ID)
}

func (s *Service) Update(id uint, req *UpdateManagerRequest) (*EventManager, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Department != nil {
		m.Department = *req.Department
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(m); err != nil {
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
