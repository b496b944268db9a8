package models

// Reading 单条健康传感器读数（输入文件一行，8 列固定顺序）
type Reading struct {
	PatientID              string  // 患者ID（≤10字符）
	Timestamp              string  // ISO 格式时间戳（原样保留，不解析）
	HeartRate              int     // 心率（bpm）
	BloodPressureSystolic  int     // 收缩压（mmHg）
	BloodPressureDiastolic int     // 舒张压（mmHg）
	Temperature            float64 // 体温
	GlucoseLevel           int     // 血糖（mg/dL）
	SensorID               string  // 传感器ID（≤10字符）
}

// Statistics 数值列均值统计结果
type Statistics struct {
	AvgHeartRate  float64 // 平均心率（bpm）
	AvgSystolicBP float64 // 平均收缩压（mmHg）
	AvgGlucose    float64 // 平均血糖（mg/dL）
}

// AbnormalCounts 超过固定阈值的异常读数计数
type AbnormalCounts struct {
	HighHeartRate     int // 心率 > 90 的读数数量
	HighBloodPressure int // 收缩压 > 130 的读数数量
	HighGlucose       int // 血糖 > 110 的读数数量
}
