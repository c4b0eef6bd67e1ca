package api

import (
	"github.com/graphql-go/graphql"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"googleId":          &graphql.Field{Type: graphql.String},
		"name":              &graphql.Field{Type: graphql.String},
		"email":             &graphql.Field{Type: graphql.String},
		"preferredCurrency": &graphql.Field{Type: graphql.String},
	},
})

var earningsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Earnings",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"description": &graphql.Field{Type: graphql.String},
		"amount":      &graphql.Field{Type: graphql.Float},
		"currency":    &graphql.Field{Type: graphql.String},
		"date":        &graphql.Field{Type: graphql.String},
		"userId":      &graphql.Field{Type: graphql.String},
	},
})

var expensesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Expenses",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"description": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"amount":      &graphql.Field{Type: graphql.Float},
		"currency":    &graphql.Field{Type: graphql.String},
		"date":        &graphql.Field{Type: graphql.String},
		"userId":      &graphql.Field{Type: graphql.String},
		"isFixed":     &graphql.Field{Type: graphql.Boolean},
	},
})

var monthlyBreakdownType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MonthlyBreakdown",
	Fields: graphql.Fields{
		"month":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"earnings": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"expenses": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"net":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"currency": &graphql.Field{Type: graphql.String},
	},
})

var summaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Summary",
	Fields: graphql.Fields{
		"totalEarnings":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"totalExpenses":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"netAmount":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"currency":         &graphql.Field{Type: graphql.String},
		"monthlyBreakdown": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(monthlyBreakdownType)))},
	},
})

var userInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"googleId":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"name":              &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"preferredCurrency": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":                &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"preferredCurrency": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var earningsInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EarningsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"amount":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"currency":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"date":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId":      &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var expensesInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ExpensesInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"category":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"amount":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"currency":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"date":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isFixed":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

func requiredArg(t graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)}
}

func (api *Api) newSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"email": requiredArg(graphql.String)},
				Resolve: api.resolveUser,
			},
			"earnings": &graphql.Field{
				Type:    graphql.NewList(earningsType),
				Args:    graphql.FieldConfigArgument{"userId": requiredArg(graphql.ID)},
				Resolve: api.resolveEarnings,
			},
			"expenses": &graphql.Field{
				Type:    graphql.NewList(expensesType),
				Args:    graphql.FieldConfigArgument{"userId": requiredArg(graphql.ID)},
				Resolve: api.resolveExpenses,
			},
			"earningsMonthly": &graphql.Field{
				Type: graphql.NewList(earningsType),
				Args: graphql.FieldConfigArgument{
					"month":  requiredArg(graphql.String),
					"userId": requiredArg(graphql.ID),
				},
				Resolve: api.resolveEarningsMonthly,
			},
			"expensesMonthly": &graphql.Field{
				Type: graphql.NewList(expensesType),
				Args: graphql.FieldConfigArgument{
					"month":  requiredArg(graphql.String),
					"userId": requiredArg(graphql.ID),
				},
				Resolve: api.resolveExpensesMonthly,
			},
			"summary": &graphql.Field{
				Type: summaryType,
				Args: graphql.FieldConfigArgument{
					"userId":   requiredArg(graphql.ID),
					"currency": requiredArg(graphql.String),
				},
				Resolve: api.resolveSummary,
			},
			"totalBalance": &graphql.Field{
				Type:    graphql.Float,
				Args:    graphql.FieldConfigArgument{"userId": requiredArg(graphql.ID)},
				Resolve: api.resolveTotalBalance,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type:    graphql.NewNonNull(userType),
				Args:    graphql.FieldConfigArgument{"user": requiredArg(userInputType)},
				Resolve: api.resolveCreateUser,
			},
			"createEarnings": &graphql.Field{
				Type:    earningsType,
				Args:    graphql.FieldConfigArgument{"earnings": requiredArg(earningsInputType)},
				Resolve: api.resolveCreateEarnings,
			},
			"createExpenses": &graphql.Field{
				Type:    expensesType,
				Args:    graphql.FieldConfigArgument{"expenses": requiredArg(expensesInputType)},
				Resolve: api.resolveCreateExpenses,
			},
			"deleteEarnings": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    graphql.FieldConfigArgument{"id": requiredArg(graphql.ID)},
				Resolve: api.resolveDeleteEarnings,
			},
			"deleteExpenses": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    graphql.FieldConfigArgument{"id": requiredArg(graphql.ID)},
				Resolve: api.resolveDeleteExpenses,
			},
			"updateUser": &graphql.Field{
				Type:    graphql.NewNonNull(userType),
				Args:    graphql.FieldConfigArgument{"user": requiredArg(updateUserInputType)},
				Resolve: api.resolveUpdateUser,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
