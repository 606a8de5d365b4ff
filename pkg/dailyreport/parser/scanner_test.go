package parser

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wide = Window{Start: 0, End: 100}

func TestMarkersAfter(t *testing.T) {
	assert.Equal(t, []string{"三", "四", "五", "六"}, markersAfter("二"))
	assert.Equal(t, []string{"五", "六"}, markersAfter("四"))
	assert.Empty(t, markersAfter("六"))
	assert.Nil(t, markersAfter("七"))
}

func TestPrefixScan_KeepsOnlyOwnPrefix(t *testing.T) {
	rows := [][]string{
		{"2.1", "基础施工", "80%", "", "75%"},
		{"3.1", "钢筋绑扎", "完成50%"},
		{"2.2", ""},
		{"2", "逐项进度汇报"},
		{"12.1", "幕墙"},
		{"3.2", "模板安装"},
	}

	tasks := taskProgressScan.scan(rows, wide)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2.1", tasks[0].TaskNo)
	assert.Equal(t, "基础施工", tasks[0].TaskName)
	assert.Equal(t, "80%", tasks[0].PlannedProgress)
	assert.Equal(t, "75%", tasks[0].ActualProgress)

	plans := tomorrowPlanScan.scan(rows, wide)
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.NotContains(t, p.PlanNo, "2.", "task rows must not leak into plans")
	}
}

func TestPrefixScan_RespectsWindow(t *testing.T) {
	rows := make([][]string, 8)
	rows[6] = []string{"2.1", "基础施工", "80%", "", "75%"}

	assert.Len(t, taskProgressScan.scan(rows, Window{Start: 5, End: 19}), 1)
	assert.Empty(t, taskProgressScan.scan(rows, Window{Start: 0, End: 5}))
	assert.Empty(t, taskProgressScan.scan(rows, Window{Start: 7, End: 19}))
}

func TestRegionScan_WorkersThenMachinery(t *testing.T) {
	rows := [][]string{
		{"二", "各工种工作汇报"},
		{"1", "张三", "钢筋工"},
		{"2", "李四", "木工"},
		{"3", "王五", "电工"},
		{"三", "机械租赁情况"},
		{"1", "挖掘机", "2"},
		{"2", "装载机", "1"},
		{"四", "问题反馈"},
		{"1", "不是机械"},
	}

	workers := workerScan.scan(rows, wide)
	require.Len(t, workers, 3)
	assert.Equal(t, []string{"张三", "李四", "王五"}, []string{workers[0].Name, workers[1].Name, workers[2].Name})

	machinery := machineryScan.scan(rows, wide)
	require.Len(t, machinery, 2)
	assert.Equal(t, "挖掘机", machinery[0].MachineName)
	assert.Equal(t, "2", machinery[0].Quantity)
	assert.Equal(t, "装载机", machinery[1].MachineName)
}

func TestRegionScan_IgnoresRowsBeforeEntry(t *testing.T) {
	rows := [][]string{
		{"1", "前置行"},
		{"二"},
		{"序号", "姓名", "工种"},
		{"1", "姓名"},
		{"1", "张三"},
	}

	workers := workerScan.scan(rows, wide)
	require.Len(t, workers, 1)
	assert.Equal(t, "张三", workers[0].Name)
}

func TestRegionScan_NoEntryYieldsNothing(t *testing.T) {
	rows := [][]string{
		{"1", "张三"},
		{"三", "机械"},
		{"1", "挖掘机"},
	}

	assert.Empty(t, workerScan.scan(rows, wide))
}

func TestRegionScan_NeverPassesNextMarker(t *testing.T) {
	rows := [][]string{
		{"二"},
		{"1", "张三"},
		{"五", "其他"},
		{"2", "李四"},
		{"二"},
		{"3", "王五"},
	}

	workers := workerScan.scan(rows, wide)
	stopAt := slices.IndexFunc(rows, func(r []string) bool { return Cell(r, 0) == "五" })
	require.Len(t, workers, 1)
	for _, w := range workers {
		idx := slices.IndexFunc(rows, func(r []string) bool { return Cell(r, 1) == w.Name })
		assert.Less(t, idx, stopAt)
	}
}

// Only markers after the entry end a region. Rows numbered with an earlier
// marker are kept as ordinary records when they carry a name; templates
// never place them there, and the rule keeps region ends unambiguous.
func TestRegionScan_EarlierMarkerDoesNotTerminate(t *testing.T) {
	rows := [][]string{
		{"三"},
		{"一", "说明"},
		{"二", "说明"},
		{"1", "挖掘机"},
	}

	machinery := machineryScan.scan(rows, wide)
	require.Len(t, machinery, 3)
	assert.Equal(t, "一", machinery[0].SeqNo)
	assert.Equal(t, "二", machinery[1].SeqNo)
}

func TestProblemScan_Numbering(t *testing.T) {
	rows := [][]string{
		{"四"},
		{"1", "问题反馈"},
		{"序号", "问题描述"},
		{"1", "不应保留", "", "原因"},
		{"2", "塔吊故障", "", "电机损坏", "停工", "维修中"},
		{"1.2", "钢筋未到场"},
		{"1.x", "格式不符"},
		{"a", "格式不符"},
		{"3", ""},
		{"2", "需求描述"},
		{"3", "需求行不应计入问题"},
	}

	problems := problemScan.scan(rows, wide)
	require.Len(t, problems, 2)
	assert.Equal(t, "2", problems[0].ProblemNo)
	assert.Equal(t, "塔吊故障", problems[0].Description)
	assert.Equal(t, "电机损坏", problems[0].Reason)
	assert.Equal(t, "停工", problems[0].Impact)
	assert.Equal(t, "维修中", problems[0].Progress)
	assert.Equal(t, "1.2", problems[1].ProblemNo)
}

func TestRequirementScan_SubRegion(t *testing.T) {
	rows := [][]string{
		{"四"},
		{"1", "问题反馈"},
		{"2", "塔吊故障"},
		{"2", "需求"},
		{"序号", "需求描述", "", "紧急程度", "", "期望时间"},
		{"1", "增派木工", "", "紧急", "", "5月12日"},
		{"2", "", "", "一般"},
		{"2", "补充钢筋", "", "一般"},
		{"六", "附件"},
		{"3", "不应保留"},
	}

	reqs := requirementScan.scan(rows, wide)
	require.Len(t, reqs, 2)
	assert.Equal(t, "增派木工", reqs[0].Description)
	assert.Equal(t, "紧急", reqs[0].UrgencyLevel)
	assert.Equal(t, "5月12日", reqs[0].ExpectedTime)
	assert.Equal(t, "补充钢筋", reqs[1].Description)
}

func TestRequirementScan_WithoutSubHeader(t *testing.T) {
	rows := [][]string{
		{"四"},
		{"1", "问题反馈"},
		{"2", "塔吊故障"},
		{"五"},
	}

	assert.Empty(t, requirementScan.scan(rows, wide))
}

func TestIsRequirementHeader(t *testing.T) {
	tests := []struct {
		row      []string
		expected bool
	}{
		{[]string{"2", "需求描述"}, true},
		{[]string{" 2 ", "需求"}, true},
		{[]string{"2", "需求不足"}, false},
		{[]string{"3", "需求描述"}, false},
		{[]string{"2"}, false},
	}

	for _, tt := range tests {
		if result := isRequirementHeader(tt.row); result != tt.expected {
			t.Errorf("isRequirementHeader(%q) = %v, expected %v", tt.row, result, tt.expected)
		}
	}
}
