// Named pie chart datasets over the dashboard schema.
package database

import "anacharts/chart"

// Dataset is a read-only query producing one pie slice per row.
type Dataset struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Title       string       `json:"title"`
	Query       string       `json:"-"`
	KeyMap      chart.KeyMap `json:"keyMap"`
}

var Datasets = []Dataset{
	{
		Name:        "department_headcount",
		Description: "Number of employees per department",
		Title:       "Headcount by department",
		Query: `SELECT d.name AS key, COUNT(e.employee_id)::float8 AS value
			FROM departments d
			LEFT JOIN employees e ON e.department_id = d.department_id
			GROUP BY d.name
			ORDER BY d.name`,
		KeyMap: chart.DefaultKeyMap,
	},
	{
		Name:        "department_salary",
		Description: "Total salary paid per department",
		Title:       "Salary by department",
		Query: `SELECT d.name AS department, d.location, SUM(e.salary) AS salary
			FROM departments d
			JOIN employees e ON e.department_id = d.department_id
			GROUP BY d.name, d.location
			ORDER BY d.name`,
		KeyMap: chart.KeyMap{TextKey: "department", DataKey: "salary"},
	},
	{
		Name:        "sales_by_employee",
		Description: "Sales amount per employee",
		Title:       "Sales by employee",
		Query: `SELECT e.name AS key, SUM(s.amount) AS value
			FROM sales s
			JOIN employees e ON e.employee_id = s.employee_id
			GROUP BY e.name
			ORDER BY e.name`,
		KeyMap: chart.DefaultKeyMap,
	},
	{
		Name:        "project_budget",
		Description: "Budget share per project",
		Title:       "Project budgets",
		Query: `SELECT name AS project, budget, start_date, end_date
			FROM projects
			ORDER BY start_date`,
		KeyMap: chart.KeyMap{TextKey: "project", DataKey: "budget"},
	},
}

func FindDataset(name string) (Dataset, bool) {
	for _, ds := range Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return Dataset{}, false
}
