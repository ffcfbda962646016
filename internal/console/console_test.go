package console

import (
	"bytes"
	"context"
	"errors"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"github.com/maxaizer/staff-agency/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"iter"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

type testAgency struct {
	dbCtx        *repositories.DbContext
	bus          EventBus.Bus
	repositories Repositories
	applications *repositories.Applications
}

func newTestAgency(t *testing.T) *testAgency {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "agency.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbCtx.Close() })
	require.NoError(t, dbCtx.Migrate())

	bus := EventBus.New()
	candidates := repositories.NewCandidatesRepository(dbCtx.DB)
	vacancies := repositories.NewVacanciesRepository(dbCtx.DB)
	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	directory, err := repositories.NewCachedDirectory(candidates, vacancies, bus)
	require.NoError(t, err)

	return &testAgency{
		dbCtx:        dbCtx,
		bus:          bus,
		applications: applications,
		repositories: Repositories{
			Candidate:   candidates,
			Vacancy:     vacancies,
			Application: applications,
			Directory:   directory,
		},
	}
}

func (a *testAgency) run(t *testing.T, lines ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	c, err := NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), out, a.bus, a.repositories)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func (a *testAgency) applicationsCount(t *testing.T) int64 {
	t.Helper()
	count, err := a.applications.Count(context.Background())
	require.NoError(t, err)
	return count
}

func today() string {
	return time.Now().Format(models.DateLayout)
}

var ivan = []string{"1", "Ivan Petrov", "1990-04-12", "Go, SQL", "5", "+7 900 123 45 67", "ivan@example.com"}
var engineer = []string{"2", "Engineer", "Acme", "150000", "3 years of Go", "Backend team"}

func lines(groups ...[]string) []string {
	var result []string
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

func Test_Console_AddCandidateThenShow_ShouldPrintInputVerbatim(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, lines(ivan, []string{"4", "0"})...)

	assert.Contains(t, out, "Candidate added successfully!")
	assert.Contains(t, out, "\nID: 1\n"+
		"Full name: Ivan Petrov\n"+
		"Birth date: 1990-04-12\n"+
		"Skills: Go, SQL\n"+
		"Experience: 5 years\n"+
		"Contacts: +7 900 123 45 67, ivan@example.com\n"+
		"Registered: "+today()+"\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func Test_Console_AddVacancyThenShow_ShouldPrintPublicationDate(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, lines(engineer, []string{"5", "0"})...)

	assert.Contains(t, out, "Vacancy added successfully!")
	assert.Contains(t, out, "\nID: 1\n"+
		"Position: Engineer\n"+
		"Company: Acme\n"+
		"Salary: 150000\n"+
		"Requirements: 3 years of Go\n"+
		"Description: Backend team\n"+
		"Published: "+today()+"\n")
}

func Test_Console_WhenTablesEmpty_ShouldReportNone(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, "4", "5", "6", "0")

	assert.Contains(t, out, "No candidates\n")
	assert.Contains(t, out, "No vacancies\n")
	assert.Contains(t, out, "No applications\n")
}

func Test_Console_FullScenario(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, lines(ivan, engineer, []string{"3", "1", "1", "7", "1", "Accepted", "6", "0"})...)

	assert.Contains(t, out, "\nCandidates:\n1: Ivan Petrov\n")
	assert.Contains(t, out, "\nVacancies:\n1: Engineer (Acme)\n")
	assert.Contains(t, out, "Application created successfully!")
	assert.Contains(t, out, "New status (Under review/Accepted/Rejected): ")
	assert.Contains(t, out, "Application status updated!")
	assert.Contains(t, out, "\nID: 1\n"+
		"Candidate: Ivan Petrov\n"+
		"Vacancy: Engineer (Acme)\n"+
		"Status: Accepted\n"+
		"Applied: "+today()+"\n")

	application, err := agency.applications.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, models.Application{
		ID:          1,
		CandidateID: 1,
		VacancyID:   1,
		Status:      models.Accepted,
		AppDate:     today(),
	}, *application)
}

func Test_Console_CreateApplication_WhenIDNotNumeric_ShouldNotInsert(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, "3", "first", "3", "1", "x1", "0")

	assert.Equal(t, 2, strings.Count(out, numericIDsRequired+"\n"))
	assert.NotContains(t, out, "Application created successfully!")
	assert.Equal(t, int64(0), agency.applicationsCount(t))
}

func Test_Console_CreateApplication_WhenReferencesMissing_ShouldStillInsert(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, "3", " 42 ", "7", "6", "0")

	assert.Contains(t, out, "Application created successfully!")
	assert.Equal(t, int64(1), agency.applicationsCount(t))
	assert.Contains(t, out, "No applications\n")
}

func Test_Console_CreateApplication_ShouldListCandidateAddedInSameSession(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, lines([]string{"3", "x"}, ivan, []string{"3", "x", "0"})...)

	assert.Equal(t, 1, strings.Count(out, "1: Ivan Petrov\n"))
}

func Test_Console_UpdateStatus_WhenIDNotNumeric_ShouldAbort(t *testing.T) {
	agency := newTestAgency(t)
	_, err := agency.applications.Add(context.Background(), 1, 1)
	require.NoError(t, err)

	out := agency.run(t, "7", "one", "0")

	assert.Contains(t, out, "Error: enter a numeric ID\n")
	assert.NotContains(t, out, "New status")
	assert.NotContains(t, out, "Application status updated!")
}

func Test_Console_UpdateStatus_ShouldStoreTextAsTyped(t *testing.T) {
	agency := newTestAgency(t)
	_, err := agency.applications.Add(context.Background(), 1, 1)
	require.NoError(t, err)
	ctx := context.Background()

	out := agency.run(t, "7", "1", "Interview scheduled", "0")

	assert.Contains(t, out, "Application status updated!")
	application, err := agency.applications.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatus("Interview scheduled"), application.Status)

	agency.run(t, "7", "1", "accepted", "0")

	application, err = agency.applications.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatus("accepted"), application.Status)

	agency.run(t, "7", "1", "  2 ", "0")

	application, err = agency.applications.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatus("  2 "), application.Status)
}

func Test_Console_UpdateStatus_WhenIDMissing_ShouldNotReportFailure(t *testing.T) {
	agency := newTestAgency(t)
	_, err := agency.applications.Add(context.Background(), 1, 1)
	require.NoError(t, err)

	out := agency.run(t, "7", "99", "rejected", "0")

	assert.Contains(t, out, "Application status updated!")
	assert.NotContains(t, out, "Error")

	application, err := agency.applications.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.UnderReview, application.Status)
}

func Test_Console_WhenChoiceUnknown_ShouldAskAgain(t *testing.T) {
	agency := newTestAgency(t)

	out := agency.run(t, "8", " 1", "", "0")

	assert.Equal(t, 3, strings.Count(out, "Invalid input, try again\n"))
	assert.Equal(t, 4, strings.Count(out, "=== Staffing Agency ==="))
}

func Test_Console_WhenInputEnds_ShouldExit(t *testing.T) {
	agency := newTestAgency(t)
	out := &bytes.Buffer{}

	c, err := NewConsole(strings.NewReader("1\nIvan"), out, agency.bus, agency.repositories)
	require.NoError(t, err)

	assert.NoError(t, c.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
	assert.NotContains(t, out.String(), "Candidate added successfully!")
}

func Test_Console_WhenLineIsVeryLong_ShouldKeepServing(t *testing.T) {
	agency := newTestAgency(t)
	longName := strings.Repeat("x", 2*1024*1024)

	out := agency.run(t, "1", longName, "", "", "", "", "", "4", "0")

	assert.Contains(t, out, "Candidate added successfully!")
	assert.Contains(t, out, "Full name: "+longName+"\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func Test_Console_WhenLineEndsWithCRLF_ShouldStripTerminator(t *testing.T) {
	agency := newTestAgency(t)
	out := &bytes.Buffer{}

	c, err := NewConsole(strings.NewReader("3\r\n5\r\n6\r\n0\r\n"), out, agency.bus, agency.repositories)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))

	application, err := agency.applications.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, 5, application.CandidateID)
	assert.Equal(t, 6, application.VacancyID)
	assert.NotContains(t, out.String(), "Invalid input")
}

func Test_Console_WhenInputFails_ShouldExitWithoutWriting(t *testing.T) {
	agency := newTestAgency(t)
	out := &bytes.Buffer{}
	in := io.MultiReader(strings.NewReader("1\nIvan\n"), iotest.ErrReader(errors.New("device lost")))

	c, err := NewConsole(in, out, agency.bus, agency.repositories)
	require.NoError(t, err)

	assert.NoError(t, c.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
	assert.NotContains(t, out.String(), "Candidate added successfully!")
	assert.NotContains(t, out.String(), "Error:")
}

func Test_Console_WhenContextCanceled_ShouldStop(t *testing.T) {
	agency := newTestAgency(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewConsole(strings.NewReader("0\n"), &bytes.Buffer{}, agency.bus, agency.repositories)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

type failingCandidates struct{}

func (f failingCandidates) Add(_ context.Context, _, _, _, _, _, _ string) (models.Candidate, error) {
	return models.Candidate{}, errors.New("NOT NULL constraint failed: candidates.full_name")
}

func (f failingCandidates) All(_ context.Context) iter.Seq2[models.Candidate, error] {
	return func(yield func(models.Candidate, error) bool) {
		yield(models.Candidate{}, errors.New("no such table: candidates"))
	}
}

func Test_Console_WhenStorageFails_ShouldReportAndContinue(t *testing.T) {
	agency := newTestAgency(t)
	agency.repositories.Candidate = failingCandidates{}

	out := agency.run(t, lines(ivan, []string{"4", "6", "0"})...)

	assert.Contains(t, out, "Error: NOT NULL constraint failed: candidates.full_name\n")
	assert.Contains(t, out, "Error: no such table: candidates\n")
	assert.NotContains(t, out, "Candidate added successfully!")
	assert.Contains(t, out, "No applications\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func Test_NewConsole_WhenDependencyMissing_ShouldFail(t *testing.T) {
	agency := newTestAgency(t)

	_, err := NewConsole(strings.NewReader(""), &bytes.Buffer{}, nil, agency.repositories)
	assert.Error(t, err)

	repos := agency.repositories
	repos.Directory = nil
	_, err = NewConsole(strings.NewReader(""), &bytes.Buffer{}, agency.bus, repos)
	assert.Error(t, err)
}
