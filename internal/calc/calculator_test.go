package calc

import (
	"testing"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/stretchr/testify/assert"
)

func TestPhysicalDamage(t *testing.T) {
	// 常规减法伤害
	assert.Equal(t, 300.0, PhysicalDamage(500, 200, 1))
	// 防御高于攻击时触发5%保底
	assert.Equal(t, 15.0, PhysicalDamage(300, 400, 1))
	// 打数放大
	assert.Equal(t, 600.0, PhysicalDamage(500, 200, 2))
	// 非正攻击力
	assert.Equal(t, 0.0, PhysicalDamage(0, 100, 1))
	assert.Equal(t, 0.0, PhysicalDamage(-10, 0, 1))
}

func TestMagicalDamage(t *testing.T) {
	// 法抗百分比换算经过浮点除法，比较时留出误差余量
	const epsilon = 1e-9

	// 30%法抗
	assert.InDelta(t, 350.0, MagicalDamage(500, 30, 1), epsilon)
	// 0%法抗等于全额
	assert.InDelta(t, 500.0, MagicalDamage(500, 0, 1), epsilon)
	// 95%法抗恰好压到保底线
	assert.InDelta(t, 25.0, MagicalDamage(500, 95, 1), epsilon)
	// 法抗达到或超过100%直接触发保底
	assert.InDelta(t, 25.0, MagicalDamage(500, 100, 1), epsilon)
	assert.InDelta(t, 25.0, MagicalDamage(500, 150, 1), epsilon)
	// 非正攻击力
	assert.InDelta(t, 0.0, MagicalDamage(0, 30, 1), epsilon)
}

func TestDPS(t *testing.T) {
	assert.Equal(t, 390.0, DPS(300, 1.3))
	assert.Equal(t, 0.0, DPS(300, 0))
	assert.Equal(t, 0.0, DPS(300, -1))
}

func TestDamagePerHitDispatch(t *testing.T) {
	assert.Equal(t, 300.0, DamagePerHit(500, operator.AtkTypePhysical, 200, 0, 1))
	assert.Equal(t, 350.0, DamagePerHit(500, operator.AtkTypeMagical, 0, 30, 1))
	// 未知攻击类型不造成伤害
	assert.Equal(t, 0.0, DamagePerHit(500, "healing", 200, 30, 1))
}

func TestArmorBreakPoint(t *testing.T) {
	assert.Equal(t, 475, ArmorBreakPoint(500))
	assert.Equal(t, 0, ArmorBreakPoint(0))
}

func TestOperatorPerformance(t *testing.T) {
	op := operator.Operator{
		Name:      "银灰",
		ClassType: "guard",
		HP:        2500,
		Atk:       800,
		Def:       300,
		AtkSpeed:  1.25,
		AtkType:   operator.AtkTypePhysical,
		Cost:      20,
	}

	perf := OperatorPerformance(op, 200, 0)
	assert.Equal(t, 600.0, perf.DPH)
	assert.Equal(t, 750.0, perf.DPS)
	assert.Equal(t, 760, perf.ArmorBreakPoint)
	assert.Equal(t, 37.5, perf.CostEfficiency)
	// 非医疗干员没有治疗指标
	assert.Equal(t, 0.0, perf.HPS)
	assert.Equal(t, 0.0, perf.HPH)
	// 2500 × (1 + 300/100)
	assert.Equal(t, 10000.0, perf.Survivability)
}

func TestOperatorPerformanceMedic(t *testing.T) {
	op := operator.Operator{
		Name:      "闪灵",
		ClassType: operator.ClassMedic,
		HP:        1800,
		Atk:       500,
		AtkSpeed:  0.8,
		AtkType:   operator.AtkTypePhysical,
		Cost:      18,
	}

	perf := OperatorPerformance(op, 0, 0)
	// 医疗干员沿用攻击力作为单次治疗量
	assert.Equal(t, 400.0, perf.HPS)
	assert.Equal(t, 500.0, perf.HPH)
}

func TestOperatorPerformanceCostFloor(t *testing.T) {
	op := operator.Operator{
		Atk:      100,
		AtkSpeed: 1.0,
		AtkType:  operator.AtkTypePhysical,
		Cost:     0,
	}

	// 费用非正时按1计，避免除零
	perf := OperatorPerformance(op, 0, 0)
	assert.Equal(t, 100.0, perf.CostEfficiency)
}

func TestDamageCurve(t *testing.T) {
	op := operator.Operator{
		Atk:      500,
		AtkSpeed: 1.0,
		AtkType:  operator.AtkTypePhysical,
		Cost:     10,
	}

	curve := DamageCurve(op, 100, 50)
	assert.Len(t, curve, 3)
	assert.Equal(t, CurvePoint{Defense: 0, DPS: 500}, curve[0])
	assert.Equal(t, CurvePoint{Defense: 50, DPS: 450}, curve[1])
	assert.Equal(t, CurvePoint{Defense: 100, DPS: 400}, curve[2])

	// 非正参数回落到默认区间：0..1000步长25
	curve = DamageCurve(op, 0, 0)
	assert.Len(t, curve, 41)
	assert.Equal(t, 1000, curve[40].Defense)
	// 防御超过破甲线后只剩5%保底
	assert.Equal(t, 25.0, curve[40].DPS)
}

func TestTimelineDamage(t *testing.T) {
	op := operator.Operator{
		Atk:      500,
		AtkSpeed: 1.0,
		AtkType:  operator.AtkTypePhysical,
		Cost:     10,
	}

	timeline := TimelineDamage(op, 15, 0, 0)
	assert.Len(t, timeline, 4)
	assert.Equal(t, TimelinePoint{Time: 0, CumulativeDamage: 0}, timeline[0])
	assert.Equal(t, TimelinePoint{Time: 5, CumulativeDamage: 2500}, timeline[1])
	assert.Equal(t, TimelinePoint{Time: 15, CumulativeDamage: 7500}, timeline[3])
}

func TestCumulativeDamage(t *testing.T) {
	op := operator.Operator{
		Atk:      500,
		AtkSpeed: 1.0,
		AtkType:  operator.AtkTypePhysical,
		Cost:     10,
	}

	assert.Equal(t, 5000.0, CumulativeDamage(op, 10, 0, 0))
	assert.Equal(t, 0.0, CumulativeDamage(op, 0, 0, 0))
	assert.Equal(t, 0.0, CumulativeDamage(op, -5, 0, 0))
}
