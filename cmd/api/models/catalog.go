package models

// CatalogKind identifies one of the reference catalogs that work-act
// children point into. Catalog content is managed outside this service;
// only existence is checked here.
type CatalogKind string

const (
	CatalogOrganization       CatalogKind = "organization"
	CatalogLightingObject     CatalogKind = "lighting_object"
	CatalogEmployee           CatalogKind = "employee"
	CatalogBrigadeRole        CatalogKind = "brigade_role"
	CatalogFaultType          CatalogKind = "fault_type"
	CatalogWorkBasisType      CatalogKind = "work_basis_type"
	CatalogUnitOfMeasure      CatalogKind = "unit_of_measure"
	CatalogEquipmentCondition CatalogKind = "equipment_condition"
)

// catalogTables maps each kind to its table and primary-key column
var catalogTables = map[CatalogKind]struct {
	Table string
	IDCol string
	Label string
}{
	CatalogOrganization:       {"organization", "org_id", "Organization"},
	CatalogLightingObject:     {"lighting_object", "lighting_object_id", "Lighting object"},
	CatalogEmployee:           {"employee", "employee_id", "Employee"},
	CatalogBrigadeRole:        {"brigade_role", "brigade_role_id", "Brigade role"},
	CatalogFaultType:          {"fault_type", "fault_type_id", "Fault type"},
	CatalogWorkBasisType:      {"work_basis_type", "work_basis_type_id", "Work basis type"},
	CatalogUnitOfMeasure:      {"unit_of_measure", "uom_id", "Unit of measure"},
	CatalogEquipmentCondition: {"equipment_condition", "equipment_condition_id", "Equipment condition"},
}

// Table returns the catalog's table name
func (k CatalogKind) Table() string { return catalogTables[k].Table }

// IDColumn returns the catalog's primary-key column name
func (k CatalogKind) IDColumn() string { return catalogTables[k].IDCol }

// Label returns the human-readable entity name used in error messages
func (k CatalogKind) Label() string { return catalogTables[k].Label }
