package fixtures

// categorySubstances maps each category to the functional ingredients that
// vote for it. An ingredient can appear under several categories.
var categorySubstances = map[string][]string{
	"간 건강 (피로/해독)": {"실리마린", "코엔자임Q10", "글루타치온(미백)", "비타민B1", "비타민B2", "비타민B6", "비타민B12", "셀레늄", "아연", "비타민C", "비타민E"},
	"위/소화기":        {"양배추추출물", "감초추출물", "매실추출물", "효소", "알파아밀라아제(효소)", "프로테아제(효소)", "프로바이오틱스(유산균)", "알로에 전잎(장건강)"},
	"심장/혈압":        {"오메가3(혈행)", "EPA(오메가3)", "DHA(오메가3)", "칼륨", "엽산(비타민B9)", "나토키나제(혈행)", "단신수(혈행)", "마그네슘"},
	"호흡기/구강":       {"프로폴리스(항산화)", "플라보노이드(프로폴리스)", "아연", "비타민C"},

	"유아/아동 (성장/면역)": {"아연", "비타민D", "칼슘", "해조칼슘(칼슘)", "프로바이오틱스(유산균)", "철분"},
	"남성 건강":         {"쏘팔메토", "로르산(쏘팔메토)", "야관문", "마카", "아르기닌(아미노산)", "아연", "옥타코사놀(지구력)", "비타민B1"},
	"여성 건강":         {"대두이소플라본(뼈건강)", "감마리놀렌산(오메가6)", "철분", "엽산(비타민B9)", "히알루론산(피부보습)", "석류(엘라그산)"},

	"뇌/신경/수면": {"포스파티딜세린(뇌건강)", "스핑고마이엘린(뇌건강)", "피브로인(기억력)", "테아닌(스트레스 완화)", "GABA(수면/스트레스)", "로즈마리산(레몬밤)", "락티움(수면)", "감태추출물(수면)", "미강주정추출물(수면)", "타트체리(수면)", "마그네슘", "비타민B6", "비타민B12"},
	"눈 건강":    {"루테인(마리골드꽃)", "지아잔틴(마리골드꽃)", "아스타잔틴(헤마토코쿠스)", "안토시아노사이드(빌베리)", "레티놀(비타민A)", "베타카로틴(비타민A)", "비타민A", "오메가3(혈행)"},
	"혈관/혈액순환": {"오메가3(혈행)", "EPA(오메가3)", "DHA(오메가3)", "감마리놀렌산(오메가6)", "나토키나제(혈행)", "헤스페리딘(혈행)", "단신수(혈행)", "비타민K", "비타민E"},
	"관절/뼈":    {"글루코사민(관절)", "N-아세틸글루코사민(관절)", "MSM(식이유황)", "콘드로이친(연골)", "뮤코다당단백(콘드로이친)", "보스웰릭산(보스웰리아)", "초록입홍합추출물", "로즈힙추출물", "칼슘", "구연산칼슘(칼슘)", "해조칼슘(칼슘)", "유청칼슘(칼슘)", "마그네슘", "비타민D", "비타민K"},
	"장 건강/배변": {"프로바이오틱스(유산균)", "비피더스균(유산균)", "락토바실러스(유산균)", "프리바이오틱스(유산균 먹이)", "프락토올리고당(프리바이오틱스)", "갈락토올리고당(프리바이오틱스)", "식이섬유", "차전자피(식이섬유)", "난소화성말토덱스트린(식이섬유)", "구아검(식이섬유)", "알로에 전잎(장건강)"},
	"피부/미용":   {"히알루론산(피부보습)", "콜라겐(피부)", "세라마이드(피부장벽)", "엘라스틴(피부탄력)", "글루타치온(미백)", "알로에 전잎(장건강)", "스피루리나", "클로렐라(엽록소)", "비타민C", "비오틴(비타민B7)", "레티놀(비타민A)", "비타민E"},
	"면역/활력":   {"홍삼(면역/피로)", "인삼(면역/피로)", "진세노사이드(홍삼/인삼)", "프로폴리스(항산화)", "베타글루칸(면역)", "락토페린(면역)", "폴리감마글루탐산(면역)", "알콕시글리세롤(상어간유)", "스쿠알렌(상어간유)", "코디세핀(동충하초)", "비타민C", "아연", "망간", "구리", "SOD(항산화효소)"},
	"다이어트 (체지방)": {"가르시니아(HCA)", "카테킨(녹차추출물)", "시서스(다이어트)", "풋사과추출물(다이어트)", "CLA(공액리놀렌산)", "잔티젠(다이어트)", "핑거루트(판두라틴)", "포스콜린(콜레우스)", "L-카르니틴(다이어트/운동)"},
	"근육/운동":      {"단백질", "아미노산", "BCAA(아미노산)", "아르기닌(아미노산)", "크레아틴(근육)", "옥타코사놀(지구력)", "글루타민(아미노산)"},
}
