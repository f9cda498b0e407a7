package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyNewProject        = "new_project"
	KeyEditProject       = "edit_project"
	KeyDeleteProject     = "delete_project"
	KeySearch            = "search"
	KeySort              = "sort"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyProjectDetail     = "project_detail"
	KeyName              = "name"
	KeyDescription       = "description"
	KeyProgress          = "progress"
	KeyDueDate           = "due_date"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyEnterKeyword      = "enter_keyword"
	KeySearchResults     = "search_results"
	KeyAllProjects       = "all_projects"
	KeyNoSelection       = "no_selection"
	KeyCheckInput        = "check_input"
	KeyStoreError        = "store_error"
	KeyStoreURL          = "store_url"
	KeyBucket            = "bucket"
	KeyRequestTimeout    = "request_timeout"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidTimeout    = "invalid_timeout"
	KeyStoreSettings     = "store_settings"
	KeyInterfaceSettings = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Project Management Tool",
		KeyNewProject:        "New Project",
		KeyEditProject:       "Edit Project",
		KeyDeleteProject:     "Delete Project",
		KeySearch:            "Search",
		KeySort:              "Sort",
		KeyRefresh:           "Refresh",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyProjectDetail:     "Project Detail",
		KeyName:              "Name",
		KeyDescription:       "Description",
		KeyProgress:          "Progress (%)",
		KeyDueDate:           "Due Date",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyEnterKeyword:      "Enter the key word",
		KeySearchResults:     "Search results for",
		KeyAllProjects:       "All projects",
		KeyNoSelection:       "You haven't selected a project!",
		KeyCheckInput:        "Please check your input!",
		KeyStoreError:        "Project table is unavailable",
		KeyStoreURL:          "Store URL",
		KeyBucket:            "Bucket",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeySettingsSaved:     "Settings saved. Store changes apply on next start.",
		KeyInvalidTimeout:    "Timeout must be a whole number of seconds",
		KeyStoreSettings:     "Store Settings",
		KeyInterfaceSettings: "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Управление проектами",
		KeyNewProject:        "Новый проект",
		KeyEditProject:       "Изменить проект",
		KeyDeleteProject:     "Удалить проект",
		KeySearch:            "Поиск",
		KeySort:              "Сортировать",
		KeyRefresh:           "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyProjectDetail:     "Проект",
		KeyName:              "Название",
		KeyDescription:       "Описание",
		KeyProgress:          "Прогресс (%)",
		KeyDueDate:           "Срок",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyEnterKeyword:      "Введите ключевое слово",
		KeySearchResults:     "Результаты поиска",
		KeyAllProjects:       "Все проекты",
		KeyNoSelection:       "Вы не выбрали проект!",
		KeyCheckInput:        "Проверьте введённые данные!",
		KeyStoreError:        "Таблица проектов недоступна",
		KeyStoreURL:          "Адрес хранилища",
		KeyBucket:            "Бакет",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeySettingsSaved:     "Настройки сохранены. Изменения хранилища вступят в силу после перезапуска.",
		KeyInvalidTimeout:    "Таймаут должен быть целым числом секунд",
		KeyStoreSettings:     "Хранилище",
		KeyInterfaceSettings: "Интерфейс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerenciador de Projetos",
		KeyNewProject:        "Novo Projeto",
		KeyEditProject:       "Editar Projeto",
		KeyDeleteProject:     "Excluir Projeto",
		KeySearch:            "Pesquisar",
		KeySort:              "Ordenar",
		KeyRefresh:           "Atualizar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyProjectDetail:     "Detalhes do Projeto",
		KeyName:              "Nome",
		KeyDescription:       "Descrição",
		KeyProgress:          "Progresso (%)",
		KeyDueDate:           "Prazo",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyEnterKeyword:      "Digite a palavra-chave",
		KeySearchResults:     "Resultados da pesquisa para",
		KeyAllProjects:       "Todos os projetos",
		KeyNoSelection:       "Você não selecionou um projeto!",
		KeyCheckInput:        "Verifique os dados informados!",
		KeyStoreError:        "A tabela de projetos está indisponível",
		KeyStoreURL:          "URL do armazenamento",
		KeyBucket:            "Bucket",
		KeyRequestTimeout:    "Tempo limite (segundos)",
		KeySettingsSaved:     "Configurações salvas. Alterações do armazenamento valem no próximo início.",
		KeyInvalidTimeout:    "O tempo limite deve ser um número inteiro de segundos",
		KeyStoreSettings:     "Armazenamento",
		KeyInterfaceSettings: "Interface",
	}
}
