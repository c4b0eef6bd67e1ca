package api

import (
	"github.com/fatali-fataliyev/finance_graphql/internal/contextutil"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
	"github.com/fatali-fataliyev/finance_graphql/logging"
	"github.com/graphql-go/graphql"
)

// QUERIES:

func (api *Api) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	user, err := api.Service.GetUserByEmail(p.Context, email)
	if err != nil {
		return nil, api.fail(p, err)
	}
	if user == nil {
		return nil, nil
	}
	return UserToHttp(*user), nil
}

func (api *Api) resolveEarnings(p graphql.ResolveParams) (interface{}, error) {
	userId, _ := p.Args["userId"].(string)
	earnings, err := api.Service.GetEarnings(p.Context, userId)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return earningsItems(earnings), nil
}

func (api *Api) resolveExpenses(p graphql.ResolveParams) (interface{}, error) {
	userId, _ := p.Args["userId"].(string)
	expenses, err := api.Service.GetExpenses(p.Context, userId)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return expensesItems(expenses), nil
}

func (api *Api) resolveEarningsMonthly(p graphql.ResolveParams) (interface{}, error) {
	month, _ := p.Args["month"].(string)
	userId, _ := p.Args["userId"].(string)
	earnings, err := api.Service.GetMonthlyEarnings(p.Context, month, userId)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return earningsItems(earnings), nil
}

func (api *Api) resolveExpensesMonthly(p graphql.ResolveParams) (interface{}, error) {
	month, _ := p.Args["month"].(string)
	userId, _ := p.Args["userId"].(string)
	expenses, err := api.Service.GetMonthlyExpenses(p.Context, month, userId)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return expensesItems(expenses), nil
}

func (api *Api) resolveSummary(p graphql.ResolveParams) (interface{}, error) {
	userId, _ := p.Args["userId"].(string)
	currency, _ := p.Args["currency"].(string)
	summary, err := api.Service.GetSummary(p.Context, userId, currency)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return SummaryToHttp(*summary), nil
}

func (api *Api) resolveTotalBalance(p graphql.ResolveParams) (interface{}, error) {
	userId, _ := p.Args["userId"].(string)
	balance, err := api.Service.GetTotalBalance(p.Context, userId)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return balance, nil
}

// MUTATIONS:

func (api *Api) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["user"].(map[string]interface{})
	req := finance.UserRequest{
		GoogleID:          stringField(input, "googleId"),
		Name:              stringField(input, "name"),
		Email:             stringField(input, "email"),
		PreferredCurrency: stringField(input, "preferredCurrency"),
	}

	user, err := api.Service.SaveUser(p.Context, req)
	if err != nil {
		return nil, api.fail(p, err)
	}
	logging.Logger.Infof("[TraceID=%s] | user %s created", contextutil.TraceIDFromContext(p.Context), user.ID)
	return UserToHttp(*user), nil
}

func (api *Api) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["user"].(map[string]interface{})
	req := finance.UpdateUserRequest{
		ID:                stringField(input, "id"),
		PreferredCurrency: stringField(input, "preferredCurrency"),
	}

	user, err := api.Service.UpdateUser(p.Context, req)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return UserToHttp(*user), nil
}

func (api *Api) resolveCreateEarnings(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["earnings"].(map[string]interface{})
	req := finance.EarningsRequest{
		Description: stringField(input, "description"),
		Amount:      input["amount"],
		Currency:    stringField(input, "currency"),
		Date:        input["date"],
		UserID:      stringField(input, "userId"),
	}

	earnings, err := api.Service.SaveEarnings(p.Context, req)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return EarningsToHttp(*earnings), nil
}

func (api *Api) resolveCreateExpenses(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["expenses"].(map[string]interface{})
	isFixed, _ := input["isFixed"].(bool)
	req := finance.ExpensesRequest{
		Description: stringField(input, "description"),
		Category:    stringField(input, "category"),
		Amount:      input["amount"],
		Currency:    stringField(input, "currency"),
		Date:        input["date"],
		UserID:      stringField(input, "userId"),
		IsFixed:     isFixed,
	}

	expenses, err := api.Service.SaveExpenses(p.Context, req)
	if err != nil {
		return nil, api.fail(p, err)
	}
	return ExpensesToHttp(*expenses), nil
}

func (api *Api) resolveDeleteEarnings(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := api.Service.DeleteEarnings(p.Context, id); err != nil {
		return nil, api.fail(p, err)
	}
	return true, nil
}

func (api *Api) resolveDeleteExpenses(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := api.Service.DeleteExpenses(p.Context, id); err != nil {
		return nil, api.fail(p, err)
	}
	return true, nil
}

// HELPERS:

func (api *Api) fail(p graphql.ResolveParams, err error) error {
	logging.Logger.Warnf("[TraceID=%s] | %s failed | Error: %v",
		contextutil.TraceIDFromContext(p.Context), p.Info.FieldName, err)
	return toGraphQLError(err)
}

func stringField(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}

func earningsItems(earnings []finance.Earnings) []EarningsItem {
	items := make([]EarningsItem, 0, len(earnings))
	for _, e := range earnings {
		items = append(items, EarningsToHttp(e))
	}
	return items
}

func expensesItems(expenses []finance.Expenses) []ExpensesItem {
	items := make([]ExpensesItem, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ExpensesToHttp(e))
	}
	return items
}
