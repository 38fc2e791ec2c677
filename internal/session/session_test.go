package session_test

import (
	"context"
	"time"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/session"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/cashfy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ctx = context.Background()

func badge(g session.Gamification, id gamification.BadgeID) gamification.Badge {
	for _, b := range g.Badges {
		if b.ID == id {
			return b
		}
	}

	return gamification.Badge{}
}

func (suite *TestSuiteStandard) TestLoadIsSilent() {
	suite.Require().Nil(models.DB.Create(&models.Goal{UserID: suite.user.ID, Name: "Car", TargetAmount: decimal.NewFromInt(30000)}).Error)
	suite.Require().Nil(models.DB.Create(&models.Transaction{UserID: suite.user.ID, Amount: decimal.NewFromInt(100), Type: models.TransactionTypeInvestment}).Error)

	s := suite.newSession()
	g := s.Gamification()

	suite.Assert().True(badge(g, gamification.BadgeFirstGoal).Unlocked)
	suite.Assert().True(badge(g, gamification.BadgeFirstInvestment).Unlocked)
	suite.Assert().Equal(250, g.TotalXP)
	suite.Assert().Empty(s.Notifications(), "the first evaluation must not announce badges")
	suite.Assert().Nil(s.PopCelebration())
	suite.Assert().Empty(suite.sink.kinds())

	profile, err := models.Store{}.Profile(ctx, suite.user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(250, profile.TotalXP)
	suite.Assert().Contains(profile.UnlockedBadges, string(gamification.BadgeFirstGoal))
}

func (suite *TestSuiteStandard) TestReloadDoesNotCreditTwice() {
	s := suite.newSession()
	_, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(30000)})
	suite.Require().Nil(err)
	suite.Require().Equal(100, s.Gamification().TotalXP)

	reloaded := suite.newSession()
	g := reloaded.Gamification()
	suite.Assert().Equal(100, g.TotalXP)
	suite.Assert().True(badge(g, gamification.BadgeFirstGoal).Unlocked)
	suite.Assert().Nil(reloaded.PopCelebration())
}

func (suite *TestSuiteStandard) TestUnlockIsAnnouncedOnce() {
	s := suite.newSession()

	_, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(30000)})
	suite.Require().Nil(err)
	_, err = s.AddGoal(ctx, models.Goal{Name: "House", TargetAmount: decimal.NewFromInt(300000)})
	suite.Require().Nil(err)

	suite.Assert().Equal([]string{"New achievement unlocked: Dreamer!"}, s.Notifications())
	suite.Assert().Equal(100, s.Gamification().TotalXP)

	celebration := s.PopCelebration()
	suite.Require().NotNil(celebration)
	suite.Assert().Equal(gamification.BadgeFirstGoal, celebration.ID)
	suite.Assert().Nil(s.PopCelebration())

	suite.Assert().Equal([]string{"celebration", "notification", "xp"}, suite.sink.kinds())
	suite.Assert().Len(s.Goals(), 2)
	suite.Assert().Equal("Car", s.Goals()[0].Name, "goals keep their creation order")
}

func (suite *TestSuiteStandard) TestInvestmentIsAllocatedToFirstGoal() {
	s := suite.newSession()

	car, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(1000)})
	suite.Require().Nil(err)
	_, err = s.AddGoal(ctx, models.Goal{Name: "House", TargetAmount: decimal.NewFromInt(1000)})
	suite.Require().Nil(err)

	t, err := s.AddTransaction(ctx, models.Transaction{Description: "ETF", Amount: decimal.NewFromInt(950), Type: models.TransactionTypeInvestment})
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, t.ID)

	goal, err := s.Goal(car.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(950).Equal(goal.CurrentAmount))
	suite.Assert().True(s.Goals()[1].CurrentAmount.IsZero())
	suite.Assert().Contains(s.Notifications(), "Goal 'Car' is almost complete (95%)!")

	_, err = s.AddTransaction(ctx, models.Transaction{Description: "ETF", Amount: decimal.NewFromInt(50), Type: models.TransactionTypeInvestment})
	suite.Require().Nil(err)

	g := s.Gamification()
	suite.Assert().True(badge(g, gamification.BadgeGoalCompleted).Unlocked)
	suite.Assert().Equal(100+150+500, g.TotalXP)

	stored, err := models.Store{}.Goals(ctx, suite.user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(stored[0].CurrentAmount))
}

func (suite *TestSuiteStandard) TestInvestmentWithoutGoal() {
	s := suite.newSession()

	t, err := s.AddTransaction(ctx, models.Transaction{Amount: decimal.NewFromInt(10), Type: models.TransactionTypeInvestment})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.DefaultCategory, t.Category)
	suite.Assert().Len(s.Transactions(), 1)
	suite.Assert().Empty(s.Goals())
}

func (suite *TestSuiteStandard) TestInvestmentAllocationFailure() {
	s := suite.newSession()
	_, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(1000)})
	suite.Require().Nil(err)

	suite.store.failUpdate = true
	t, err := s.AddTransaction(ctx, models.Transaction{Amount: decimal.NewFromInt(10), Type: models.TransactionTypeInvestment})

	suite.Assert().ErrorIs(err, session.ErrGoalAllocation)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().NotEqual(uuid.Nil, t.ID, "the transaction is recorded")
	suite.Assert().Len(s.Transactions(), 1)
	suite.Assert().True(s.Goals()[0].CurrentAmount.IsZero(), "the goal is rolled back")
	suite.Assert().True(badge(s.Gamification(), gamification.BadgeFirstInvestment).Unlocked)
}

func (suite *TestSuiteStandard) TestStoreFailureRollsBack() {
	s := suite.newSession()
	suite.store.failCreate = true

	_, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(1000)})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().Empty(s.Goals())
	suite.Assert().Equal(0, s.Gamification().TotalXP)
	suite.Assert().Empty(s.Notifications())

	_, err = s.AddTransaction(ctx, models.Transaction{Amount: decimal.NewFromInt(10), Type: models.TransactionTypeIncome})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().Empty(s.Transactions())

	_, err = s.AddIncomeSource(ctx, models.IncomeSource{Name: "Salary"})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().Empty(s.IncomeSources())
}

func (suite *TestSuiteStandard) TestValidationBeforeMutation() {
	s := suite.newSession()

	_, err := s.AddTransaction(ctx, models.Transaction{Amount: decimal.Zero, Type: models.TransactionTypeIncome})
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)

	_, err = s.AddTransaction(ctx, models.Transaction{Amount: decimal.NewFromInt(1), Type: "gift"})
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)

	_, err = s.AddGoal(ctx, models.Goal{Name: " ", TargetAmount: decimal.NewFromInt(1)})
	suite.Assert().ErrorIs(err, models.ErrGoalNameEmpty)

	_, err = s.AddProject(ctx, models.Project{})
	suite.Assert().ErrorIs(err, models.ErrProjectNameEmpty)

	suite.Assert().Empty(s.Transactions())
	suite.Assert().Empty(s.Goals())
}

func (suite *TestSuiteStandard) TestTransactionLifecycle() {
	s := suite.newSession()

	older, err := s.AddTransaction(ctx, models.Transaction{Date: now.AddDate(0, 0, -3), Description: "Rent", Amount: decimal.NewFromInt(1200), Category: "Housing", Type: models.TransactionTypeExpense})
	suite.Require().Nil(err)
	newer, err := s.AddTransaction(ctx, models.Transaction{Date: now, Description: "Salary", Amount: decimal.NewFromInt(6000), Type: models.TransactionTypeIncome})
	suite.Require().Nil(err)

	suite.Assert().Equal(newer.ID, s.Transactions()[0].ID, "transactions are ordered newest first")
	suite.Assert().True(badge(s.Gamification(), gamification.BadgeHighIncome).Unlocked)

	older.Date = now.AddDate(0, 0, 1)
	older.Amount = decimal.NewFromInt(1300)
	updated, err := s.UpdateTransaction(ctx, older)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(1300).Equal(updated.Amount))
	suite.Assert().Equal(older.ID, s.Transactions()[0].ID, "a changed date reorders the transactions")

	suite.Require().Nil(s.RemoveTransaction(ctx, newer.ID))
	suite.Assert().Len(s.Transactions(), 1)
	suite.Assert().True(badge(s.Gamification(), gamification.BadgeHighIncome).Unlocked, "badges stay unlocked")

	suite.Assert().ErrorIs(s.RemoveTransaction(ctx, newer.ID), models.ErrResourceNotFound)
	_, err = s.Transaction(newer.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = s.UpdateTransaction(ctx, models.Transaction{DefaultModel: models.DefaultModel{ID: uuid.New()}})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteFailureKeepsResource() {
	s := suite.newSession()
	g, err := s.AddGoal(ctx, models.Goal{Name: "Car", TargetAmount: decimal.NewFromInt(1000)})
	suite.Require().Nil(err)

	suite.store.failDelete = true
	suite.Assert().ErrorIs(s.RemoveGoal(ctx, g.ID), models.ErrGeneral)
	suite.Assert().Len(s.Goals(), 1)

	suite.store.failDelete = false
	suite.Assert().Nil(s.RemoveGoal(ctx, g.ID))
	suite.Assert().Empty(s.Goals())
}

func (suite *TestSuiteStandard) TestContributeToGoal() {
	s := suite.newSession()
	g, err := s.AddGoal(ctx, models.Goal{Name: "Trip", TargetAmount: decimal.NewFromInt(100)})
	suite.Require().Nil(err)

	_, err = s.ContributeToGoal(ctx, g.ID, decimal.Zero)
	suite.Assert().ErrorIs(err, session.ErrContributionNotPositive)

	_, err = s.ContributeToGoal(ctx, uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	g, err = s.ContributeToGoal(ctx, g.ID, decimal.NewFromInt(100))
	suite.Require().Nil(err)
	suite.Assert().True(g.Completed())
	suite.Assert().True(badge(s.Gamification(), gamification.BadgeGoalCompleted).Unlocked)
	suite.Assert().Equal("New achievement unlocked: Achiever!", s.Notifications()[0])

	g.Name = "Trip to Lisbon"
	g, err = s.UpdateGoal(ctx, g)
	suite.Require().Nil(err)
	suite.Assert().Equal("Trip to Lisbon", g.Name)
}

func (suite *TestSuiteStandard) TestIncomeSourcesAndProjects() {
	s := suite.newSession()

	i, err := s.AddIncomeSource(ctx, models.IncomeSource{Name: "Salary", ExpectedAmount: decimal.NewFromInt(5000)})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.DefaultIncomeSourceColor, i.Color)

	i.ExpectedAmount = decimal.NewFromInt(5500)
	i, err = s.UpdateIncomeSource(ctx, i)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(5500).Equal(i.ExpectedAmount))

	got, err := s.IncomeSource(i.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(i.ID, got.ID)

	suite.Require().Nil(s.RemoveIncomeSource(ctx, i.ID))
	suite.Assert().Empty(s.IncomeSources())

	p, err := s.AddProject(ctx, models.Project{Name: "Renovation"})
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Project{p}, s.Projects())
}

func (suite *TestSuiteStandard) TestEarnXP() {
	s := suite.newSession()

	s.EarnXP(ctx, 30)
	s.EarnXP(ctx, -50)
	s.EarnXP(ctx, 0)

	suite.Assert().Equal(0, s.Gamification().TotalXP, "XP never drops below zero")
	suite.Assert().Equal([]string{"-50 XP (penalty)", "+30 XP earned!"}, s.Notifications())

	s.EarnXP(ctx, 1000)
	g := s.Gamification()
	suite.Assert().Equal(2, g.Level)
	suite.Assert().Equal(2000, g.NextLevelXP)

	profile, err := models.Store{}.Profile(ctx, suite.user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1000, profile.TotalXP)
}

func (suite *TestSuiteStandard) TestProfileFailureKeepsState() {
	s := suite.newSession()
	suite.store.failSaveProfile = true

	s.EarnXP(ctx, 300)
	suite.Assert().Equal(300, s.Gamification().TotalXP)

	suite.store.failSaveProfile = false
	s.EarnXP(ctx, 1)

	profile, err := models.Store{}.Profile(ctx, suite.user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(301, profile.TotalXP)
}

func (suite *TestSuiteStandard) TestLearning() {
	s := suite.newSession()
	lesson := suite.lessons.Lessons[0]

	_, err := s.AnswerQuestion(ctx, "unknown", "q1", 0)
	suite.Assert().Error(err)
	suite.Assert().Equal(0, s.Gamification().TotalXP)

	first := lesson.Questions[0]
	answer, err := s.AnswerQuestion(ctx, lesson.ID, first.ID, first.Answer)
	suite.Require().Nil(err)
	suite.Assert().True(answer.Correct)
	suite.Assert().False(answer.LessonCompleted)

	g := s.Gamification()
	suite.Assert().Equal(50, g.LearningXP)
	suite.Assert().Equal(50, g.TotalXP, "the apprentice reward is not credited on unlock")
	apprentice := badge(g, gamification.BadgeApprentice)
	suite.Assert().True(apprentice.Unlocked)
	suite.Assert().Equal("Earned 50 XP learning.", apprentice.Description)
	suite.Assert().Equal("New achievement unlocked: Apprentice!", s.Notifications()[0])

	second := lesson.Questions[1]
	wrong := (second.Answer + 1) % len(second.Options)
	answer, err = s.AnswerQuestion(ctx, lesson.ID, second.ID, wrong)
	suite.Require().Nil(err)
	suite.Assert().False(answer.Correct)
	suite.Assert().True(answer.LessonCompleted)
	suite.Assert().Equal(30, s.Gamification().LearningXP)

	metadata, err := models.Store{}.Metadata(ctx, suite.user.ID)
	suite.Require().Nil(err)

	var learningXP int
	var completed []string
	suite.Require().Nil(metadata.Get(models.MetadataLearningXP, &learningXP))
	suite.Require().Nil(metadata.Get(models.MetadataCompletedLessons, &completed))
	suite.Assert().Equal(30, learningXP)
	suite.Assert().Equal([]string{lesson.ID}, completed)

	reloaded := suite.newSession()
	suite.Assert().Equal(30, reloaded.Gamification().LearningXP)
	suite.Assert().True(reloaded.Lessons()[0].Completed)
	suite.Assert().False(reloaded.Lessons()[1].Completed)
}

func (suite *TestSuiteStandard) TestShopping() {
	s := suite.newSession()

	_, err := s.ConcludeShopping(ctx)
	suite.Assert().ErrorIs(err, shopping.ErrListEmpty)

	rice, err := s.AddShoppingItem("Rice", decimal.NewFromFloat(27.9))
	suite.Require().Nil(err)
	beans, err := s.AddShoppingItem("Beans", decimal.Zero)
	suite.Require().Nil(err)

	_, err = s.UpdateShoppingItem(beans.ID, "Black beans", decimal.NewFromFloat(8.5))
	suite.Require().Nil(err)
	suite.Require().Nil(s.RemoveShoppingItem(rice.ID))
	_, err = s.AddShoppingItem("Rice", decimal.NewFromFloat(27.9))
	suite.Require().Nil(err)
	suite.Assert().Len(s.ShoppingList(), 2)

	t, err := s.ConcludeShopping(ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal("Supermarket (2 items)", t.Description)
	suite.Assert().Equal(models.ShoppingListCategory, t.Category)
	suite.Assert().Equal(models.TransactionTypeExpense, t.Type)
	suite.Assert().True(decimal.NewFromFloat(36.4).Equal(t.Amount))
	suite.Assert().Empty(s.ShoppingList())

	g := s.Gamification()
	suite.Assert().Equal(gamification.PurchaseXP, g.TotalXP)
	suite.Assert().True(decimal.NewFromFloat(36.4).Equal(g.ShoppingTotal))
	suite.Assert().True(badge(g, gamification.BadgeShopper).Unlocked)
	suite.Assert().Contains(s.Notifications(), "Purchase of R$ 36,40 recorded!")
	suite.Assert().Contains(s.Notifications(), "+50 XP earned!")

	_, err = s.RecordPurchase(ctx, decimal.NewFromInt(10), 1)
	suite.Require().Nil(err)
	g = s.Gamification()
	suite.Assert().Equal(2*gamification.PurchaseXP, g.TotalXP)
	suite.Assert().Equal(2*gamification.PurchaseXP, badge(g, gamification.BadgeShopper).XPReward)
}

func (suite *TestSuiteStandard) TestShoppingWithoutPrices() {
	s := suite.newSession()
	_, err := s.AddShoppingItem("Beans", decimal.Zero)
	suite.Require().Nil(err)

	_, err = s.ConcludeShopping(ctx)
	suite.Assert().ErrorIs(err, shopping.ErrTotalNotPositive)
	suite.Assert().Len(s.ShoppingList(), 1, "the list is kept")
	suite.Assert().Empty(s.Transactions())
}

func (suite *TestSuiteStandard) TestSummary() {
	s := suite.newSession()

	for _, t := range []models.Transaction{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(5000), Type: models.TransactionTypeIncome},
		{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(300), Type: models.TransactionTypeExpense},
		{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200), Type: models.TransactionTypeExpense},
		{Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(800), Type: models.TransactionTypeInvestment},
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(999), Type: models.TransactionTypeExpense},
	} {
		_, err := s.AddTransaction(ctx, t)
		suite.Require().Nil(err)
	}

	summary := s.Summary(types.NewMonth(2024, 2))
	suite.Assert().True(decimal.NewFromInt(5000).Equal(summary.Income))
	suite.Assert().True(decimal.NewFromInt(500).Equal(summary.Expenses))
	suite.Assert().True(decimal.NewFromInt(800).Equal(summary.Investments))
	suite.Assert().True(decimal.NewFromInt(4500).Equal(summary.Result))
	suite.Assert().Len(summary.Days, 29)
	suite.Assert().True(decimal.NewFromInt(500).Equal(summary.Days[28].Expenses))
	suite.Assert().True(decimal.NewFromInt(5000).Equal(summary.Days[0].Income))
}

func (suite *TestSuiteStandard) TestManager() {
	m := session.NewManager(suite.store, suite.lessons)

	a, err := m.Get(ctx, suite.user.ID)
	suite.Require().Nil(err)
	b, err := m.Get(ctx, suite.user.ID)
	suite.Require().Nil(err)

	suite.Assert().Same(a, b)
	suite.Assert().Equal(1, m.Len())
	suite.Assert().Len(m.Collectors(), 3)

	m.Forget(suite.user.ID)
	suite.Assert().Equal(0, m.Len())

	_, err = m.Get(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "sessions of unknown users cannot be loaded")
	suite.Assert().Equal(0, m.Len())
}

func (suite *TestSuiteStandard) TestManagerCancelledRequest() {
	m := session.NewManager(suite.store, suite.lessons)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	s, err := m.Get(cancelled, suite.user.ID)
	suite.Require().Nil(err, "a cancelled request must not fail the shared load")
	suite.Assert().NotNil(s)
	suite.Assert().Equal(1, m.Len())
}
