package employee

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	seq     int
	byID    map[string]employee.Employee
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]employee.Employee{}}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.List(ctx, true)
}

func (f *fakeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.byID {
		if !activeOnly || emp.Active {
			result = append(result, emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeRepo) ExistsByName(_ context.Context, name string, excludeID string) (bool, error) {
	for id, emp := range f.byID {
		if id != excludeID && strings.EqualFold(emp.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.seq++
	emp.ID = "emp-" + strconv.Itoa(f.seq)
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeRepo) SetActive(_ context.Context, id string, active bool) error {
	emp := f.byID[id]
	emp.Active = active
	f.byID[id] = emp
	return nil
}

func (f *fakeRepo) DeleteCascade(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func createRequest(name string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:                    name,
		HourlyRate:              decimal.NewFromInt(200),
		DailyFoodAllowance:      decimal.NewFromInt(50),
		DailyTransportAllowance: decimal.NewFromInt(30),
	}
}

func TestCreateEmployee_NormalizesName(t *testing.T) {
	svc := NewEmployeeService(newFakeRepo())

	resp, err := svc.CreateEmployee(context.Background(), createRequest("  ayşe   yılmaz "))
	require.NoError(t, err)

	assert.Equal(t, "AYŞE YILMAZ", resp.Name)
	assert.True(t, resp.Active)
}

func TestCreateEmployee_DuplicateName(t *testing.T) {
	svc := NewEmployeeService(newFakeRepo())
	_, err := svc.CreateEmployee(context.Background(), createRequest("Ali Demir"))
	require.NoError(t, err)

	_, err = svc.CreateEmployee(context.Background(), createRequest("ali demir"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNameExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc := NewEmployeeService(newFakeRepo())
	req := createRequest(" ")
	req.HourlyRate = decimal.NewFromInt(-5)

	_, err := svc.CreateEmployee(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "hourly_rate")
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	first, err := svc.CreateEmployee(context.Background(), createRequest("Ali Demir"))
	require.NoError(t, err)
	_, err = svc.CreateEmployee(context.Background(), createRequest("Zeynep Kaya"))
	require.NoError(t, err)

	rate := decimal.NewFromInt(250)
	sameName := "ali demir"
	updated, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:         first.ID,
		Name:       &sameName,
		HourlyRate: &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, "ALI DEMIR", updated.Name)
	assert.True(t, rate.Equal(updated.HourlyRate))

	taken := "ZEYNEP KAYA"
	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: first.ID, Name: &taken})
	assert.ErrorIs(t, err, employee.ErrEmployeeNameExists)

	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSetActive(t *testing.T) {
	svc := NewEmployeeService(newFakeRepo())
	created, err := svc.CreateEmployee(context.Background(), createRequest("Ali Demir"))
	require.NoError(t, err)

	_, err = svc.SetActive(context.Background(), employee.SetActiveRequest{ID: created.ID, Active: true})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyActive)

	resp, err := svc.SetActive(context.Background(), employee.SetActiveRequest{ID: created.ID, Active: false})
	require.NoError(t, err)
	assert.False(t, resp.Active)

	active, err := svc.ListEmployees(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListEmployees(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.SetActive(context.Background(), employee.SetActiveRequest{ID: created.ID, Active: false})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyInactive)
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	created, err := svc.CreateEmployee(context.Background(), createRequest("Ali Demir"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), created.ID))
	assert.Equal(t, []string{created.ID}, repo.deleted)

	_, err = svc.GetEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), created.ID), employee.ErrEmployeeNotFound)
}
