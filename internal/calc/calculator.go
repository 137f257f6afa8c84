package calc

import (
	"github.com/SlpAus/arknights-damage-backend/internal/operator"
)

// minDamageRate 是保底伤害比例：无论敌人防御/法抗多高，
// 每次攻击至少造成攻击力5%的伤害
const minDamageRate = 0.05

// PhysicalDamage 计算单次物理伤害：max(攻击力-防御力, 攻击力×5%) × 打数
func PhysicalDamage(atk, defense int, hitCount float64) float64 {
	if atk <= 0 {
		return 0
	}

	baseDamage := float64(atk - defense)
	minDamage := float64(atk) * minDamageRate
	damagePerHit := baseDamage
	if minDamage > damagePerHit {
		damagePerHit = minDamage
	}

	total := damagePerHit * hitCount
	if total < 0 {
		return 0
	}
	return total
}

// MagicalDamage 计算单次法术伤害：攻击力×(1-法抗%) × 打数，同样有5%保底。
// magicResist以百分数表示（30代表30%法抗）。
func MagicalDamage(atk int, magicResist, hitCount float64) float64 {
	if atk <= 0 {
		return 0
	}

	resistRate := magicResist / 100.0
	minDamage := float64(atk) * minDamageRate

	var damagePerHit float64
	if resistRate >= 1.0 {
		// 法抗达到100%时直接触发保底
		damagePerHit = minDamage
	} else {
		damagePerHit = float64(atk) * (1 - resistRate)
		if damagePerHit < minDamage {
			damagePerHit = minDamage
		}
	}

	total := damagePerHit * hitCount
	if total < 0 {
		return 0
	}
	return total
}

// DPS 计算每秒伤害输出：单次伤害 × 攻击速度。
// 攻击速度非正时返回0，避免除零类问题。
func DPS(damagePerHit, atkSpeed float64) float64 {
	if atkSpeed <= 0 {
		return 0
	}
	return damagePerHit * atkSpeed
}

// DamagePerHit 根据攻击类型分发到物理或法术伤害计算；未知类型返回0
func DamagePerHit(atk int, atkType string, defense int, magicResist, hitCount float64) float64 {
	switch atkType {
	case operator.AtkTypePhysical:
		return PhysicalDamage(atk, defense, hitCount)
	case operator.AtkTypeMagical:
		return MagicalDamage(atk, magicResist, hitCount)
	default:
		return 0
	}
}

// ArmorBreakPoint 计算破甲线：敌人防御超过攻击力95%后伤害跌到保底
func ArmorBreakPoint(atk int) int {
	return int(float64(atk) * 0.95)
}

// Performance 汇总一个干员面对给定敌人配置时的综合性能指标
type Performance struct {
	DPH             float64 `json:"dph"`
	DPS             float64 `json:"dps"`
	ArmorBreakPoint int     `json:"armor_break_point"`
	CostEfficiency  float64 `json:"cost_efficiency"`
	HPS             float64 `json:"hps"`
	HPH             float64 `json:"hph"`
	Survivability   float64 `json:"survivability"`
}

// OperatorPerformance 基于干员属性和敌人配置计算综合性能指标。
// 干员没有独立的打数与治疗量字段：打数按1计，
// 医疗干员沿用攻击力作为单次治疗量。
func OperatorPerformance(op operator.Operator, enemyDef int, enemyMdef float64) Performance {
	const hitCount = 1.0

	cost := op.Cost
	if cost < 1 {
		cost = 1
	}

	dph := DamagePerHit(op.Atk, op.AtkType, enemyDef, enemyMdef, hitCount)
	dps := DPS(dph, op.AtkSpeed)

	perf := Performance{
		DPH:             dph,
		DPS:             dps,
		ArmorBreakPoint: ArmorBreakPoint(op.Atk),
		CostEfficiency:  dps / float64(cost),
	}

	if op.ClassType == operator.ClassMedic && op.Atk > 0 {
		perf.HPS = float64(op.Atk) * op.AtkSpeed
		perf.HPH = float64(op.Atk) * hitCount
	}

	// 简化的生存能力公式：生命值 × (1 + 防御力/100)
	perf.Survivability = float64(op.HP) * (1 + float64(op.Def)/100)

	return perf
}

// CurvePoint 是伤害-防御曲线上的一个数据点
type CurvePoint struct {
	Defense int     `json:"defense"`
	DPS     float64 `json:"dps"`
}

// DamageCurve 生成干员在0..maxDefense防御区间上的DPS曲线，
// 用于绘制伤害曲线图；步长越小曲线越平滑
func DamageCurve(op operator.Operator, maxDefense, step int) []CurvePoint {
	if maxDefense <= 0 {
		maxDefense = 1000
	}
	if step <= 0 {
		step = 25
	}

	curve := make([]CurvePoint, 0, maxDefense/step+1)
	for defense := 0; defense <= maxDefense; defense += step {
		perf := OperatorPerformance(op, defense, 0)
		curve = append(curve, CurvePoint{Defense: defense, DPS: perf.DPS})
	}
	return curve
}

// TimelinePoint 是时间轴上的一个累计伤害数据点
type TimelinePoint struct {
	Time             float64 `json:"time"`
	CumulativeDamage float64 `json:"cumulative_damage"`
}

// TimelineDamage 生成干员在duration秒内的累计伤害时间轴，每5秒一个数据点
func TimelineDamage(op operator.Operator, duration float64, enemyDef int, enemyMdef float64) []TimelinePoint {
	perf := OperatorPerformance(op, enemyDef, enemyMdef)

	timeline := []TimelinePoint{}
	for t := 0; t <= int(duration); t += 5 {
		timeline = append(timeline, TimelinePoint{
			Time:             float64(t),
			CumulativeDamage: perf.DPS * float64(t),
		})
	}
	return timeline
}

// CumulativeDamage 计算指定时间点的累计伤害；时间非正时返回0
func CumulativeDamage(op operator.Operator, seconds float64, enemyDef int, enemyMdef float64) float64 {
	if seconds <= 0 {
		return 0
	}
	perf := OperatorPerformance(op, enemyDef, enemyMdef)
	return perf.DPS * seconds
}
