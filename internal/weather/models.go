package weather

// Condition is the short sky description attached to a simulated reading.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionFair         Condition = "Fair"
)

// SimulationSource tags every reading produced by this service.
const SimulationSource = "Simulation Data"

// Reading is one simulated current-weather snapshot for a location.
type Reading struct {
	Location      string    `json:"location"`
	CurrentTime   string    `json:"current_time"` // RFC3339
	Temperature   float64   `json:"temperature"`  // °C
	Humidity      int       `json:"humidity"`     // percent, clamped to [20,90]
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection string    `json:"wind_direction"`
	Pressure      float64   `json:"pressure"`   // hPa
	Visibility    int       `json:"visibility"` // km
	CloudCover    int       `json:"cloud_cover"`
	WeatherText   Condition `json:"weather_text"`
	FeelsLike     float64   `json:"feels_like"`
	UVIndex       int       `json:"uv_index"`
	MinTemp       float64   `json:"min_temp"`
	MaxTemp       float64   `json:"max_temp"`
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	MoonPhase     string    `json:"moon_phase"`
	APISource     string    `json:"api_source"`
}

// Observation returns the fields the suitability scorer looks at.
func (r Reading) Observation() Observation {
	return Observation{
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
		Pressure:    r.Pressure,
	}
}

// ForecastDay is a simulated daily outlook.
type ForecastDay struct {
	Date       string    `json:"date"` // 2006-01-02
	MinTemp    float64   `json:"min_temp"`
	MaxTemp    float64   `json:"max_temp"`
	Humidity   int       `json:"humidity"`
	WindSpeed  float64   `json:"wind_speed"`
	Conditions Condition `json:"conditions"`
	CloudCover int       `json:"cloud_cover"`
}

// HourlySlot is a simulated reading for one upcoming hour.
type HourlySlot struct {
	Time        string    `json:"time"`     // 15:04
	DateTime    string    `json:"datetime"` // RFC3339
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	CloudCover  int       `json:"cloud_cover"`
	Conditions  Condition `json:"conditions"`
}

// HistoricalRecord is a synthetic yearly sample around a long-run baseline.
type HistoricalRecord struct {
	Date        string  `json:"date"`
	Year        int     `json:"year"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    float64 `json:"pressure"`
	CloudCover  int     `json:"cloud_cover"`
}

// SavedRecord is a synthetic stand-in for previously logged data. Nothing is persisted.
type SavedRecord struct {
	DateTime    string  `json:"datetime"` // 2006-01-02 15:04:05
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    float64 `json:"pressure"`
	Visibility  int     `json:"visibility"`
	CloudCover  int     `json:"cloud_cover"`
}

// DayPrediction is the suitability of one forecast day.
type DayPrediction struct {
	Date string `json:"date"`
	Suitability
}

// HourPrediction is the suitability of one hourly slot.
type HourPrediction struct {
	Time string `json:"time"`
	Suitability
}

// ConditionsPayload is the aggregate returned by the conditions endpoint.
type ConditionsPayload struct {
	Weather             Reading            `json:"weather"`
	Prediction          Suitability        `json:"prediction"`
	Forecast            []ForecastDay      `json:"forecast"`
	ForecastPredictions []DayPrediction    `json:"forecast_predictions"`
	Hourly              []HourlySlot       `json:"hourly"`
	HourlyPredictions   []HourPrediction   `json:"hourly_predictions"`
	Historical          []HistoricalRecord `json:"historical"`
	SavedData           []SavedRecord      `json:"saved_data"`
	Locations           []string           `json:"locations"`
	Timestamp           string             `json:"timestamp"`
}
