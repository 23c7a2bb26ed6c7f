package repositories

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"gorm.io/gorm"
)

// PodRepository handles database operations for Pod.
type PodRepository struct {
	db *gorm.DB
}

func NewPodRepository(db *gorm.DB) *PodRepository {
	return &PodRepository{db: db}
}

// All returns every pod in insertion order.
func (r *PodRepository) All() ([]models.Pod, error) {
	var pods []models.Pod
	err := r.db.Order("id").Find(&pods).Error
	return pods, err
}

// Find looks up a pod by primary key.
func (r *PodRepository) Find(id uint) (models.Pod, error) {
	var pod models.Pod
	err := r.db.First(&pod, id).Error
	return pod, err
}

// Create persists a new pod record.
func (r *PodRepository) Create(pod *models.Pod) error {
	return r.db.Create(pod).Error
}

// Update persists changes to an existing pod.
func (r *PodRepository) Update(pod *models.Pod) error {
	return r.db.Save(pod).Error
}

// CountByCompany returns the number of pods owned by the given company.
func (r *PodRepository) CountByCompany(companyID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Pod{}).Where("company_id = ?", companyID).Count(&n).Error
	return n, err
}
