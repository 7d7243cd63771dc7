package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

func registerDBSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^I save the id of category "([^"]*)" as "([^"]*)"$`, t.iSaveTheIDOfCategoryAs)

	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, t.theDbShouldContainObjectsInWithTheValues)
}

// iSaveTheIDOfCategoryAs looks up one of the current user's categories, e.g. a seeded default.
func (t *testContext) iSaveTheIDOfCategoryAs(name, alias string) error {
	var category model.CategoryModel
	err := t.app.db.DbConn.
		Where("user_id = ? AND name = ?", t.currentUserID, name).
		First(&category).Error
	if err != nil {
		return fmt.Errorf("category '%s' not found: %w", name, err)
	}
	t.vars[alias] = category.ID.String()
	return nil
}

// Unscoped counts include soft-deleted rows.
func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.app.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.app.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
