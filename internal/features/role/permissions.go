package role

// Permission is one assignable capability shown in the role editor.
type Permission struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AllPermissions is the catalog of permission ids grouped by resource.
// Labels are the operator-facing Russian strings.
var AllPermissions = map[string][]Permission{
	"restaurants": {
		{ID: "restaurants:read", Label: "Просмотр ресторанов"},
		{ID: "restaurants:create", Label: "Создание ресторанов"},
		{ID: "restaurants:update", Label: "Редактирование ресторанов"},
		{ID: "restaurants:delete", Label: "Удаление ресторанов"},
		{ID: "restaurants:assign-packages", Label: "Назначение пакетов меню"},
	},
	"menu-catalog": {
		{ID: "menu-catalog:read", Label: "Просмотр каталога меню"},
		{ID: "menu-catalog:create", Label: "Создание блюд в каталоге"},
		{ID: "menu-catalog:update", Label: "Редактирование блюд"},
		{ID: "menu-catalog:delete", Label: "Удаление блюд"},
	},
	"menu-packages": {
		{ID: "menu-packages:read", Label: "Просмотр пакетов меню"},
		{ID: "menu-packages:create", Label: "Создание пакетов меню"},
		{ID: "menu-packages:update", Label: "Редактирование пакетов"},
		{ID: "menu-packages:delete", Label: "Удаление пакетов"},
	},
	"artists": {
		{ID: "artists:read", Label: "Просмотр артистов"},
		{ID: "artists:create", Label: "Создание артистов"},
		{ID: "artists:update", Label: "Редактирование артистов"},
		{ID: "artists:delete", Label: "Удаление артистов"},
		{ID: "artists:assign-repertoires", Label: "Назначение репертуаров"},
	},
	"cars": {
		{ID: "cars:read", Label: "Просмотр автомобилей"},
		{ID: "cars:create", Label: "Создание автомобилей"},
		{ID: "cars:update", Label: "Редактирование автомобилей"},
		{ID: "cars:delete", Label: "Удаление автомобилей"},
	},
	"users": {
		{ID: "users:read", Label: "Просмотр пользователей"},
		{ID: "users:create", Label: "Создание пользователей"},
		{ID: "users:update", Label: "Редактирование пользователей"},
		{ID: "users:delete", Label: "Удаление пользователей"},
		{ID: "users:assign-roles", Label: "Назначение ролей пользователям"},
	},
	"roles": {
		{ID: "roles:read", Label: "Просмотр ролей"},
		{ID: "roles:create", Label: "Создание ролей"},
		{ID: "roles:update", Label: "Редактирование ролей"},
		{ID: "roles:delete", Label: "Удаление ролей"},
	},
	"lookups": {
		{ID: "lookups:read", Label: "Просмотр справочников"},
		{ID: "lookups:update", Label: "Редактирование значений"},
		{ID: "lookups:create", Label: "Создание категорий"},
		{ID: "lookups:delete", Label: "Удаление категорий"},
	},
}

// AllPermissionIDs flattens the catalog.
func AllPermissionIDs() []string {
	var ids []string
	for _, perms := range AllPermissions {
		for _, p := range perms {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// ResourcePermissionIDs returns the ids for one resource group.
func ResourcePermissionIDs(resource string) []string {
	perms := AllPermissions[resource]
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	return ids
}
