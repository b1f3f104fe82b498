package calculator

import (
	"github.com/zeptofine/nodeflow/internal/core/model"
)

// Category groups every calculator kind in the registry.
const Category = "Operations"

// Register adds every calculator kind and both integer<->decimal
// converters to the registry.
func Register(registry *model.Registry) error {
	registrations := []model.Registration{
		{Definition: AdditionDefinition(), Factory: NewAddition, Category: Category},
		{Definition: SubtractionDefinition(), Factory: NewSubtraction, Category: Category},
		{Definition: MultiplicationDefinition(), Factory: NewMultiplication, Category: Category},
		{Definition: DivisionDefinition(), Factory: NewDivision, Category: Category},
		{Definition: ModuloDefinition(), Factory: NewModulo, Category: Category},
		{Definition: NumberSourceDefinition(), Factory: NewNumberSource, Category: Category},
		{Definition: NumberDisplayDefinition(), Factory: NewNumberDisplay, Category: Category},
	}
	for _, reg := range registrations {
		if err := registry.Register(reg); err != nil {
			return err
		}
	}

	if err := registry.RegisterTypeConverter(IntegerToDecimal()); err != nil {
		return err
	}
	return registry.RegisterTypeConverter(DecimalToInteger())
}
