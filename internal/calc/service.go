package calc

import (
	"fmt"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/config"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
	"github.com/SlpAus/arknights-damage-backend/pkg/payload"
)

// --- 计算类型常量，写入journal的calculation_type列 ---

const (
	// TypePerformance 表示一次综合性能计算
	TypePerformance = "performance"
	// TypeDamageCurve 表示一次伤害曲线计算
	TypeDamageCurve = "damage_curve"
	// TypeTimeline 表示一次时间轴累计伤害计算
	TypeTimeline = "timeline"
)

// Service 封装纯计算引擎：加载干员数据、套用默认敌人配置，
// 并把每次计算作为一条记录追加进计算journal
type Service struct {
	operators *operator.Repository
	records   *record.Repository
	defaults  config.CalculatorConfig
}

// NewService 构造计算服务；defaults来自配置加载器（例如默认敌人防御300）
func NewService(operators *operator.Repository, records *record.Repository, defaults config.CalculatorConfig) *Service {
	return &Service{operators: operators, records: records, defaults: defaults}
}

// resolveEnemy 用配置默认值补全未指定的敌人属性
func (s *Service) resolveEnemy(enemyDef *int, enemyMdef *float64) (int, float64) {
	def := s.defaults.DefaultEnemyDef
	if enemyDef != nil {
		def = *enemyDef
	}
	mdef := s.defaults.DefaultEnemyMdef
	if enemyMdef != nil {
		mdef = *enemyMdef
	}
	return def, mdef
}

// journal 把一次计算追加进journal。
// journal是诊断性数据，写入失败只记录警告，不阻断计算结果的返回。
func (s *Service) journal(operatorID int, calculationType string, parameters, results payload.Map) {
	if _, err := s.records.RecordCalculation(&operatorID, calculationType, parameters, results); err != nil {
		fmt.Printf("警告: 计算记录写入失败: %v\n", err)
	}
}

// Performance 计算指定干员的综合性能指标。
// 干员不存在时返回operator.ErrNotFound。
func (s *Service) Performance(operatorID int, enemyDef *int, enemyMdef *float64) (*Performance, error) {
	op, err := s.operators.Get(operatorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, operator.ErrNotFound
	}

	def, mdef := s.resolveEnemy(enemyDef, enemyMdef)
	perf := OperatorPerformance(*op, def, mdef)

	s.journal(op.ID, TypePerformance,
		payload.Map{
			"enemy_def":  payload.Number(float64(def)),
			"enemy_mdef": payload.Number(mdef),
		},
		payload.Map{
			"dph":               payload.Number(perf.DPH),
			"dps":               payload.Number(perf.DPS),
			"armor_break_point": payload.Number(float64(perf.ArmorBreakPoint)),
			"cost_efficiency":   payload.Number(perf.CostEfficiency),
			"survivability":     payload.Number(perf.Survivability),
		})

	return &perf, nil
}

// Curve 计算指定干员的伤害-防御曲线
func (s *Service) Curve(operatorID, maxDefense, step int) ([]CurvePoint, error) {
	op, err := s.operators.Get(operatorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, operator.ErrNotFound
	}

	curve := DamageCurve(*op, maxDefense, step)

	points := make([]payload.Value, 0, len(curve))
	for _, p := range curve {
		points = append(points, payload.MapValue(payload.Map{
			"defense": payload.Number(float64(p.Defense)),
			"dps":     payload.Number(p.DPS),
		}))
	}
	s.journal(op.ID, TypeDamageCurve,
		payload.Map{
			"max_defense": payload.Number(float64(maxDefense)),
			"step":        payload.Number(float64(step)),
		},
		payload.Map{"points": payload.List(points...)})

	return curve, nil
}

// Timeline 计算指定干员在duration秒内的累计伤害时间轴
func (s *Service) Timeline(operatorID int, duration float64, enemyDef *int, enemyMdef *float64) ([]TimelinePoint, error) {
	op, err := s.operators.Get(operatorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, operator.ErrNotFound
	}

	def, mdef := s.resolveEnemy(enemyDef, enemyMdef)
	timeline := TimelineDamage(*op, duration, def, mdef)

	total := 0.0
	if len(timeline) > 0 {
		total = timeline[len(timeline)-1].CumulativeDamage
	}
	s.journal(op.ID, TypeTimeline,
		payload.Map{
			"duration":   payload.Number(duration),
			"enemy_def":  payload.Number(float64(def)),
			"enemy_mdef": payload.Number(mdef),
		},
		payload.Map{"total_damage": payload.Number(total)})

	return timeline, nil
}
